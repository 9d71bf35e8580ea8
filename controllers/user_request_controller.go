package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub-api/models"
)

type UserRequestController struct {
	db *gorm.DB
}

func NewUserRequestController(db *gorm.DB) *UserRequestController {
	return &UserRequestController{db: db}
}

type CreateUserRequestRequest struct {
	Type    string `json:"type"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body"`
}

// Create handles POST /requests
func (urc *UserRequestController) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateUserRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestType := req.Type
	if requestType == "" {
		requestType = "feature"
	}

	request := models.UserRequest{
		ID:       uuid.New().String(),
		UserID:   userID,
		Type:     requestType,
		Subject:  req.Subject,
		Body:     req.Body,
		Status:   models.RequestStatusOpen,
		Priority: models.RequestPriorityMedium,
	}

	if err := urc.db.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	c.JSON(http.StatusCreated, request)
}

// Mine handles GET /requests/mine
func (urc *UserRequestController) Mine(c *gin.Context) {
	userID := c.GetString("user_id")

	requests := []models.UserRequest{}
	if err := urc.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
