package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motohub-api/models"
	"motohub-api/services"
)

type AchievementController struct {
	db      *gorm.DB
	service *services.AchievementService
}

func NewAchievementController(db *gorm.DB, service *services.AchievementService) *AchievementController {
	return &AchievementController{
		db:      db,
		service: service,
	}
}

// List handles GET /achievements (the public definitions)
func (ac *AchievementController) List(c *gin.Context) {
	achievements := []models.Achievement{}
	if err := ac.db.Order("threshold ASC").Find(&achievements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// Mine handles GET /achievements/mine
func (ac *AchievementController) Mine(c *gin.Context) {
	userID := c.GetString("user_id")

	earned, err := ac.service.EarnedByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": earned})
}

// Check handles POST /achievements/check: evaluates all criteria and
// awards anything newly earned
func (ac *AchievementController) Check(c *gin.Context) {
	userID := c.GetString("user_id")

	progress, err := ac.service.CheckProgress(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check achievement progress"})
		return
	}

	newlyEarned := 0
	for _, p := range progress {
		if p.NewlyEarned {
			newlyEarned++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"progress":     progress,
		"newly_earned": newlyEarned,
	})
}
