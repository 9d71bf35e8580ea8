package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub-api/models"
)

type PriceAlertController struct {
	db *gorm.DB
}

func NewPriceAlertController(db *gorm.DB) *PriceAlertController {
	return &PriceAlertController{db: db}
}

type CreatePriceAlertRequest struct {
	MotorcycleID string  `json:"motorcycle_id" binding:"required"`
	TargetPrice  float64 `json:"target_price" binding:"required,gt=0"`
}

type UpdatePriceAlertRequest struct {
	TargetPrice float64 `json:"target_price" binding:"required,gt=0"`
}

// List handles GET /price-alerts
func (pc *PriceAlertController) List(c *gin.Context) {
	userID := c.GetString("user_id")

	alerts := []models.PriceAlert{}
	if err := pc.db.Preload("Motorcycle").Where("user_id = ?", userID).Order("created_at DESC").Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch price alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// Create handles POST /price-alerts
func (pc *PriceAlertController) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePriceAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var motorcycle models.Motorcycle
	if err := pc.db.First(&motorcycle, "id = ?", req.MotorcycleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
		return
	}

	alert := models.PriceAlert{
		ID:           uuid.New().String(),
		UserID:       userID,
		MotorcycleID: req.MotorcycleID,
		TargetPrice:  req.TargetPrice,
	}

	if err := pc.db.Create(&alert).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create price alert"})
		return
	}

	alert.Motorcycle = motorcycle
	c.JSON(http.StatusCreated, alert)
}

// Update handles PUT /price-alerts/:id. Changing the target re-arms a
// triggered alert.
func (pc *PriceAlertController) Update(c *gin.Context) {
	userID := c.GetString("user_id")
	alertID := c.Param("id")

	var alert models.PriceAlert
	if err := pc.db.First(&alert, "id = ? AND user_id = ?", alertID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Price alert not found"})
		return
	}

	var req UpdatePriceAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"target_price": req.TargetPrice,
		"triggered":    false,
		"triggered_at": nil,
	}
	if err := pc.db.Model(&alert).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update price alert"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Price alert updated"})
}

// Delete handles DELETE /price-alerts/:id
func (pc *PriceAlertController) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	alertID := c.Param("id")

	result := pc.db.Where("id = ? AND user_id = ?", alertID, userID).Delete(&models.PriceAlert{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete price alert"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Price alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Price alert deleted"})
}
