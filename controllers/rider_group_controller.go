package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub-api/models"
)

type RiderGroupController struct {
	db *gorm.DB
}

func NewRiderGroupController(db *gorm.DB) *RiderGroupController {
	return &RiderGroupController{db: db}
}

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Region      string `json:"region"`
	ImageURL    string `json:"image_url"`
}

// List handles GET /groups, optionally filtered by region
func (rgc *RiderGroupController) List(c *gin.Context) {
	groups := []models.RiderGroup{}
	query := rgc.db.Order("created_at DESC")

	if region := c.Query("region"); region != "" {
		query = query.Where("region = ?", region)
	}

	if err := query.Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch groups"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// Get handles GET /groups/:id
func (rgc *RiderGroupController) Get(c *gin.Context) {
	var group models.RiderGroup
	if err := rgc.db.First(&group, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	c.JSON(http.StatusOK, group)
}

// Create handles POST /groups. The owner joins automatically.
func (rgc *RiderGroupController) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := models.RiderGroup{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Region:      req.Region,
		ImageURL:    req.ImageURL,
		OwnerID:     userID,
		Members:     models.StringSlice{userID},
	}

	if err := rgc.db.Create(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}

	c.JSON(http.StatusCreated, group)
}

// Update handles PUT /groups/:id (owner only)
func (rgc *RiderGroupController) Update(c *gin.Context) {
	userID := c.GetString("user_id")

	var group models.RiderGroup
	if err := rgc.db.First(&group, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if group.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can update the group"})
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"region":      req.Region,
		"image_url":   req.ImageURL,
	}
	if err := rgc.db.Model(&group).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update group"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group updated"})
}

// Delete handles DELETE /groups/:id (owner or admin)
func (rgc *RiderGroupController) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")

	var group models.RiderGroup
	if err := rgc.db.First(&group, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if group.OwnerID != userID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can delete the group"})
		return
	}

	if err := rgc.db.Delete(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete group"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted"})
}

// Join handles POST /groups/:id/join. Membership is a single-row update
// on the group's member list.
func (rgc *RiderGroupController) Join(c *gin.Context) {
	userID := c.GetString("user_id")

	var group models.RiderGroup
	if err := rgc.db.First(&group, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if group.Members.Contains(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already a member"})
		return
	}

	group.Members = append(group.Members, userID)
	if err := rgc.db.Model(&group).Update("members", group.Members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joined group", "members": len(group.Members)})
}

// Leave handles DELETE /groups/:id/leave. The owner cannot leave their
// own group.
func (rgc *RiderGroupController) Leave(c *gin.Context) {
	userID := c.GetString("user_id")

	var group models.RiderGroup
	if err := rgc.db.First(&group, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if group.OwnerID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The owner cannot leave the group"})
		return
	}

	if !group.Members.Contains(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not a member"})
		return
	}

	remaining := models.StringSlice{}
	for _, id := range group.Members {
		if id != userID {
			remaining = append(remaining, id)
		}
	}

	if err := rgc.db.Model(&group).Update("members", remaining).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave group"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left group", "members": len(remaining)})
}
