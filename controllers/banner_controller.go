package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub-api/models"
)

type BannerController struct {
	db *gorm.DB
}

func NewBannerController(db *gorm.DB) *BannerController {
	return &BannerController{db: db}
}

type BannerRequest struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
	LinkURL  string `json:"link_url"`
	Active   *bool  `json:"active"`
	Position int    `json:"position"`
}

// Active handles GET /banners, the public listing of active banners
func (bc *BannerController) Active(c *gin.Context) {
	banners := []models.Banner{}
	if err := bc.db.Where("active = ?", true).Order("position ASC").Find(&banners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// List handles GET /admin/banners (all banners, active or not)
func (bc *BannerController) List(c *gin.Context) {
	banners := []models.Banner{}
	if err := bc.db.Order("position ASC").Find(&banners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

// Create handles POST /admin/banners
func (bc *BannerController) Create(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	banner := models.Banner{
		ID:       uuid.New().String(),
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Active:   active,
		Position: req.Position,
	}

	if err := bc.db.Create(&banner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
		return
	}

	c.JSON(http.StatusCreated, banner)
}

// Update handles PUT /admin/banners/:id
func (bc *BannerController) Update(c *gin.Context) {
	var banner models.Banner
	if err := bc.db.First(&banner, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}

	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":     req.Title,
		"image_url": req.ImageURL,
		"link_url":  req.LinkURL,
		"position":  req.Position,
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if err := bc.db.Model(&banner).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner updated"})
}

// Delete handles DELETE /admin/banners/:id
func (bc *BannerController) Delete(c *gin.Context) {
	result := bc.db.Where("id = ?", c.Param("id")).Delete(&models.Banner{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}
