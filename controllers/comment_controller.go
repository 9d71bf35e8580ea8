package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"motohub-api/models"
	"motohub-api/repositories"
)

type CommentController struct {
	comments    repositories.CommentRepository
	motorcycles repositories.MotorcycleRepository
}

func NewCommentController(comments repositories.CommentRepository, motorcycles repositories.MotorcycleRepository) *CommentController {
	return &CommentController{
		comments:    comments,
		motorcycles: motorcycles,
	}
}

type CreateCommentRequest struct {
	Body     string  `json:"body" binding:"required"`
	ParentID *string `json:"parent_id"`
}

// Create handles POST /motorcycles/:id/comments. A parent_id makes the
// comment a reply and bumps the parent's reply counter.
func (cc *CommentController) Create(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := cc.motorcycles.GetByID(motorcycleID); err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch motorcycle"})
		return
	}

	if req.ParentID != nil {
		parent, err := cc.comments.GetByID(*req.ParentID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent comment not found"})
			return
		}
		if parent.MotorcycleID != motorcycleID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent comment belongs to a different motorcycle"})
			return
		}
	}

	comment := models.Comment{
		ID:           uuid.New().String(),
		MotorcycleID: motorcycleID,
		UserID:       userID,
		ParentID:     req.ParentID,
		Body:         req.Body,
	}

	if err := cc.comments.Create(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// List handles GET /motorcycles/:id/comments. With replies=true the full
// nested thread is returned, otherwise only roots.
func (cc *CommentController) List(c *gin.Context) {
	motorcycleID := c.Param("id")

	comments, err := cc.comments.GetByMotorcycle(motorcycleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	tree := repositories.BuildCommentTree(comments)

	if c.Query("replies") == "true" {
		c.JSON(http.StatusOK, gin.H{"comments": tree})
		return
	}

	roots := make([]models.Comment, 0, len(tree))
	for _, node := range tree {
		roots = append(roots, node.Comment)
	}
	c.JSON(http.StatusOK, gin.H{"comments": roots})
}

// Delete handles DELETE /comments/:id. The author, moderators and admins
// may delete; the whole reply subtree goes with it.
func (cc *CommentController) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")
	commentID := c.Param("id")

	comment, err := cc.comments.GetByID(commentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.UserID != userID && role != models.RoleModerator && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to delete this comment"})
		return
	}

	deleted, err := cc.comments.DeleteTree(comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted", "deleted_count": deleted})
}

// Like handles POST /comments/:id/like
func (cc *CommentController) Like(c *gin.Context) {
	if err := cc.comments.Like(c.Param("id")); err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment liked"})
}

// Unlike handles DELETE /comments/:id/like
func (cc *CommentController) Unlike(c *gin.Context) {
	if err := cc.comments.Unlike(c.Param("id")); err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Like removed"})
}
