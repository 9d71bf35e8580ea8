package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"motohub-api/models"
	"motohub-api/repositories"
)

type AnalyticsController struct {
	repo repositories.AnalyticsRepository
}

func NewAnalyticsController(repo repositories.AnalyticsRepository) *AnalyticsController {
	return &AnalyticsController{repo: repo}
}

type SearchLogRequest struct {
	Query          string            `json:"query"`
	Filters        map[string]string `json:"filters"`
	ResultCount    int               `json:"result_count"`
	ClickedResults []string          `json:"clicked_results"`
}

type EngagementLogRequest struct {
	EventType    string  `json:"event_type" binding:"required"`
	MotorcycleID *string `json:"motorcycle_id"`
	Metadata     string  `json:"metadata"`
}

func optionalUserID(c *gin.Context) *string {
	if userID := c.GetString("user_id"); userID != "" {
		return &userID
	}
	return nil
}

// LogSearch handles POST /analytics/search
func (ac *AnalyticsController) LogSearch(c *gin.Context) {
	var req SearchLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtersJSON, _ := json.Marshal(req.Filters)

	log := models.SearchLog{
		ID:             uuid.New().String(),
		UserID:         optionalUserID(c),
		Query:          req.Query,
		Filters:        string(filtersJSON),
		ResultCount:    req.ResultCount,
		ClickedResults: models.StringSlice(req.ClickedResults),
	}

	if err := ac.repo.LogSearch(&log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record search"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Search recorded", "id": log.ID})
}

// LogEngagement handles POST /analytics/engagement
func (ac *AnalyticsController) LogEngagement(c *gin.Context) {
	var req EngagementLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log := models.EngagementLog{
		ID:           uuid.New().String(),
		UserID:       optionalUserID(c),
		EventType:    req.EventType,
		MotorcycleID: req.MotorcycleID,
		Metadata:     req.Metadata,
	}

	if err := ac.repo.LogEngagement(&log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record engagement"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Engagement recorded", "id": log.ID})
}

func windowDays(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		days = 7
	}
	return days
}

// SearchTrends handles GET /admin/analytics/search-trends
func (ac *AnalyticsController) SearchTrends(c *gin.Context) {
	days := windowDays(c)
	since := time.Now().AddDate(0, 0, -days)

	trends, err := ac.repo.SearchTrends(since, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute search trends"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"window_days": days, "trends": trends})
}

// ClickThroughs handles GET /admin/analytics/click-throughs
func (ac *AnalyticsController) ClickThroughs(c *gin.Context) {
	days := windowDays(c)
	since := time.Now().AddDate(0, 0, -days)

	clicks, err := ac.repo.ClickThroughs(since, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute click-throughs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"window_days": days, "click_throughs": clicks})
}

// Funnel handles GET /admin/analytics/funnel
func (ac *AnalyticsController) Funnel(c *gin.Context) {
	days := windowDays(c)
	since := time.Now().AddDate(0, 0, -days)

	funnel, err := ac.repo.Funnel(since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute engagement funnel"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"window_days": days, "funnel": funnel})
}
