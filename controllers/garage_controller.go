package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub-api/models"
)

type GarageController struct {
	db *gorm.DB
}

func NewGarageController(db *gorm.DB) *GarageController {
	return &GarageController{db: db}
}

type AddGarageItemRequest struct {
	MotorcycleID  string     `json:"motorcycle_id" binding:"required"`
	Nickname      string     `json:"nickname"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PurchasePrice *float64   `json:"purchase_price"`
	OdometerKM    float64    `json:"odometer_km"`
	Notes         string     `json:"notes"`
}

type UpdateGarageItemRequest struct {
	Nickname      string     `json:"nickname"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PurchasePrice *float64   `json:"purchase_price"`
	OdometerKM    float64    `json:"odometer_km"`
	Notes         string     `json:"notes"`
}

// List handles GET /garage
func (gc *GarageController) List(c *gin.Context) {
	userID := c.GetString("user_id")

	items := []models.GarageItem{}
	if err := gc.db.Preload("Motorcycle").Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch garage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"garage": items})
}

// Add handles POST /garage
func (gc *GarageController) Add(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AddGarageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var motorcycle models.Motorcycle
	if err := gc.db.First(&motorcycle, "id = ?", req.MotorcycleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
		return
	}

	var existing models.GarageItem
	if err := gc.db.Where("user_id = ? AND motorcycle_id = ?", userID, req.MotorcycleID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Motorcycle already in garage"})
		return
	}

	item := models.GarageItem{
		ID:            uuid.New().String(),
		UserID:        userID,
		MotorcycleID:  req.MotorcycleID,
		Nickname:      req.Nickname,
		PurchaseDate:  req.PurchaseDate,
		PurchasePrice: req.PurchasePrice,
		OdometerKM:    req.OdometerKM,
		Notes:         req.Notes,
	}

	if err := gc.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to garage"})
		return
	}

	item.Motorcycle = motorcycle
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /garage/:id
func (gc *GarageController) Update(c *gin.Context) {
	userID := c.GetString("user_id")
	itemID := c.Param("id")

	var item models.GarageItem
	if err := gc.db.First(&item, "id = ? AND user_id = ?", itemID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Garage item not found"})
		return
	}

	var req UpdateGarageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"nickname":    req.Nickname,
		"odometer_km": req.OdometerKM,
		"notes":       req.Notes,
	}
	if req.PurchaseDate != nil {
		updates["purchase_date"] = *req.PurchaseDate
	}
	if req.PurchasePrice != nil {
		updates["purchase_price"] = *req.PurchasePrice
	}

	if err := gc.db.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update garage item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Garage item updated"})
}

// Remove handles DELETE /garage/:id
func (gc *GarageController) Remove(c *gin.Context) {
	userID := c.GetString("user_id")
	itemID := c.Param("id")

	var item models.GarageItem
	if err := gc.db.First(&item, "id = ? AND user_id = ?", itemID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Garage item not found"})
		return
	}

	if err := gc.db.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove garage item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from garage"})
}

// Stats handles GET /garage/stats: count, total current value and a
// per-category breakdown of the user's garage
func (gc *GarageController) Stats(c *gin.Context) {
	userID := c.GetString("user_id")

	items := []models.GarageItem{}
	if err := gc.db.Preload("Motorcycle").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch garage"})
		return
	}

	var totalValue float64
	categories := map[string]int{}
	for _, item := range items {
		totalValue += item.Motorcycle.PriceUSD
		categories[item.Motorcycle.Category]++
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(items),
		"total_value": totalValue,
		"categories":  categories,
	})
}
