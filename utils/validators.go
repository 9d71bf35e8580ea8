package utils

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidScore(score int) bool {
	return score >= 1 && score <= 5
}

func IsValidRole(role string) bool {
	return role == "user" || role == "moderator" || role == "admin"
}

// MaxPageSize caps the page size on every paginated endpoint
const MaxPageSize = 100

// ParsePageParams reads page and limit query params. Page defaults to 1,
// limit to 20. A limit below 1 is rejected, a limit above MaxPageSize is
// clamped.
func ParsePageParams(c *gin.Context) (page, limit int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		limit = 20
	}
	if limit < 1 {
		return 0, 0, false
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return page, limit, true
}

// ParseFloatQuery returns a pointer to the parsed float query param, or
// nil when absent or malformed
func ParseFloatQuery(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseIntQuery returns a pointer to the parsed int query param, or nil
// when absent or malformed
func ParseIntQuery(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// ParseBoolQuery returns a pointer to the parsed bool query param, or nil
// when absent or malformed
func ParseBoolQuery(c *gin.Context, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
