package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motohub-api/models"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

// List handles GET /favorites, resolving favorite ids to full documents
func (fc *FavoriteController) List(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := fc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	motorcycles := []models.Motorcycle{}
	if len(user.Favorites) > 0 {
		if err := fc.db.Where("id IN ?", []string(user.Favorites)).Find(&motorcycles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"favorites": motorcycles})
}

// Add handles POST /favorites/:id
func (fc *FavoriteController) Add(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	var motorcycle models.Motorcycle
	if err := fc.db.First(&motorcycle, "id = ?", motorcycleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
		return
	}

	var user models.User
	if err := fc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Favorites.Contains(motorcycleID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already in favorites"})
		return
	}

	user.Favorites = append(user.Favorites, motorcycleID)
	if err := fc.db.Model(&user).Update("favorites", user.Favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to favorites", "favorites": user.Favorites})
}

// Remove handles DELETE /favorites/:id
func (fc *FavoriteController) Remove(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	var user models.User
	if err := fc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !user.Favorites.Contains(motorcycleID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not in favorites"})
		return
	}

	remaining := models.StringSlice{}
	for _, id := range user.Favorites {
		if id != motorcycleID {
			remaining = append(remaining, id)
		}
	}

	if err := fc.db.Model(&user).Update("favorites", remaining).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites", "favorites": remaining})
}
