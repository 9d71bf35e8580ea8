package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	t.Run("FirstPageOfMany", func(t *testing.T) {
		p := NewPagination(1, 20, 45)

		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.Limit)
		assert.Equal(t, int64(45), p.TotalCount)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.False(t, p.HasPrevious)
	})

	t.Run("MiddlePage", func(t *testing.T) {
		p := NewPagination(2, 20, 45)

		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrevious)
	})

	t.Run("LastPage", func(t *testing.T) {
		p := NewPagination(3, 20, 45)

		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrevious)
	})

	t.Run("PageBeyondEndKeepsRealTotal", func(t *testing.T) {
		p := NewPagination(9, 20, 45)

		assert.Equal(t, int64(45), p.TotalCount)
		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrevious)
	})

	t.Run("ExactMultiple", func(t *testing.T) {
		p := NewPagination(1, 20, 40)

		assert.Equal(t, 2, p.TotalPages)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		p := NewPagination(1, 20, 0)

		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrevious)
	})
}

func testContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePageParams(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		page, limit, ok := ParsePageParams(testContext(""))

		assert.True(t, ok)
		assert.Equal(t, 1, page)
		assert.Equal(t, 20, limit)
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		page, limit, ok := ParsePageParams(testContext("page=3&limit=50"))

		assert.True(t, ok)
		assert.Equal(t, 3, page)
		assert.Equal(t, 50, limit)
	})

	t.Run("ZeroLimitRejected", func(t *testing.T) {
		_, _, ok := ParsePageParams(testContext("limit=0"))

		assert.False(t, ok)
	})

	t.Run("NegativeLimitRejected", func(t *testing.T) {
		_, _, ok := ParsePageParams(testContext("limit=-5"))

		assert.False(t, ok)
	})

	t.Run("OversizedLimitClamped", func(t *testing.T) {
		_, limit, ok := ParsePageParams(testContext("limit=500"))

		assert.True(t, ok)
		assert.Equal(t, MaxPageSize, limit)
	})

	t.Run("MalformedPageFallsBack", func(t *testing.T) {
		page, _, ok := ParsePageParams(testContext("page=abc"))

		assert.True(t, ok)
		assert.Equal(t, 1, page)
	})
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("rider@motohub.com"))
	assert.True(t, IsValidEmail("first.last+tag@example.co.uk"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("user"))
	assert.True(t, IsValidRole("moderator"))
	assert.True(t, IsValidRole("admin"))
	assert.False(t, IsValidRole("superadmin"))
	assert.False(t, IsValidRole(""))
}
