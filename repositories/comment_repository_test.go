package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motohub-api/models"
)

func strptr(s string) *string { return &s }

func TestBuildCommentTree(t *testing.T) {
	t.Run("NestsRepliesUnderParents", func(t *testing.T) {
		comments := []models.Comment{
			{ID: "c1", Body: "root one"},
			{ID: "c2", Body: "root two"},
			{ID: "c3", ParentID: strptr("c1"), Body: "reply to one"},
			{ID: "c4", ParentID: strptr("c3"), Body: "reply to reply"},
			{ID: "c5", ParentID: strptr("c1"), Body: "second reply to one"},
		}

		roots := BuildCommentTree(comments)

		require.Len(t, roots, 2)
		assert.Equal(t, "c1", roots[0].ID)
		assert.Equal(t, "c2", roots[1].ID)

		require.Len(t, roots[0].Replies, 2)
		assert.Equal(t, "c3", roots[0].Replies[0].ID)
		assert.Equal(t, "c5", roots[0].Replies[1].ID)

		require.Len(t, roots[0].Replies[0].Replies, 1)
		assert.Equal(t, "c4", roots[0].Replies[0].Replies[0].ID)

		assert.Empty(t, roots[1].Replies)
	})

	t.Run("OrphanedReplySurfacesAsRoot", func(t *testing.T) {
		comments := []models.Comment{
			{ID: "c1", Body: "root"},
			{ID: "c2", ParentID: strptr("gone"), Body: "orphan"},
		}

		roots := BuildCommentTree(comments)

		require.Len(t, roots, 2)
		assert.Equal(t, "c1", roots[0].ID)
		assert.Equal(t, "c2", roots[1].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, BuildCommentTree(nil))
	})
}
