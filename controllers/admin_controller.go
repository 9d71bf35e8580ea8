package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motohub-api/models"
	"motohub-api/repositories"
	"motohub-api/services"
	"motohub-api/utils"
)

type AdminController struct {
	db          *gorm.DB
	motorcycles repositories.MotorcycleRepository
	analytics   repositories.AnalyticsRepository
	cache       *services.CacheService
}

func NewAdminController(db *gorm.DB, motorcycles repositories.MotorcycleRepository, analytics repositories.AnalyticsRepository, cache *services.CacheService) *AdminController {
	return &AdminController{
		db:          db,
		motorcycles: motorcycles,
		analytics:   analytics,
		cache:       cache,
	}
}

// ListUsers handles GET /admin/users
func (adc *AdminController) ListUsers(c *gin.Context) {
	page, limit, ok := utils.ParsePageParams(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	var total int64
	if err := adc.db.Model(&models.User{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}

	users := []models.User{}
	err := adc.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserRole handles PUT /admin/users/:id/role
func (adc *AdminController) UpdateUserRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	var user models.User
	if err := adc.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := adc.db.Model(&user).Update("role", req.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

const dashboardCacheKey = "motohub:dashboard-stats"

// Dashboard handles GET /admin/dashboard. Totals come from the same
// count path the listing uses, so the numbers agree with the catalog.
func (adc *AdminController) Dashboard(c *gin.Context) {
	var cached gin.H
	if adc.cache.GetJSON(c.Request.Context(), dashboardCacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	totalMotorcycles, err := adc.motorcycles.Count(repositories.MotorcycleFilters{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	availableMotorcycles, err := adc.motorcycles.Count(repositories.MotorcycleFilters{HideUnavailable: true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	var totalUsers, totalRatings, totalComments, totalGroups, openRequests int64
	adc.db.Model(&models.User{}).Count(&totalUsers)
	adc.db.Model(&models.Rating{}).Count(&totalRatings)
	adc.db.Model(&models.Comment{}).Count(&totalComments)
	adc.db.Model(&models.RiderGroup{}).Count(&totalGroups)
	adc.db.Model(&models.UserRequest{}).Where("status = ?", models.RequestStatusOpen).Count(&openRequests)

	type avgRow struct {
		AvgPrice float64
		AvgYear  float64
	}
	var avg avgRow
	adc.db.Model(&models.Motorcycle{}).
		Select("COALESCE(AVG(price_usd), 0) as avg_price, COALESCE(AVG(year), 0) as avg_year").
		Scan(&avg)

	roles, err := adc.analytics.RoleDistribution()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	searches, engagements, err := adc.analytics.RecentActivity(7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	stats := gin.H{
		"total_motorcycles":     totalMotorcycles,
		"available_motorcycles": availableMotorcycles,
		"total_users":           totalUsers,
		"total_ratings":         totalRatings,
		"total_comments":        totalComments,
		"total_groups":          totalGroups,
		"open_requests":         openRequests,
		"average_price_usd":     avg.AvgPrice,
		"average_year":          avg.AvgYear,
		"role_distribution":     roles,
		"recent_activity": gin.H{
			"window_days": 7,
			"searches":    searches,
			"engagements": engagements,
		},
	}

	adc.cache.SetJSON(c.Request.Context(), dashboardCacheKey, stats)
	c.JSON(http.StatusOK, stats)
}

// ListRequests handles GET /admin/requests with optional status filter
func (adc *AdminController) ListRequests(c *gin.Context) {
	requests := []models.UserRequest{}
	query := adc.db.Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}

	if err := query.Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

type TriageRequest struct {
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

// Triage handles PUT /admin/requests/:id
func (adc *AdminController) Triage(c *gin.Context) {
	var req TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var request models.UserRequest
	if err := adc.db.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Priority != "" {
		updates["priority"] = req.Priority
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := adc.db.Model(&request).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request updated"})
}

// ExportRequests handles GET /admin/requests/export?format=csv|json
func (adc *AdminController) ExportRequests(c *gin.Context) {
	requests := []models.UserRequest{}
	if err := adc.db.Order("created_at ASC").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	if c.DefaultQuery("format", "json") == "csv" {
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", "attachment; filename=user_requests.csv")

		writer := csv.NewWriter(c.Writer)
		writer.Write([]string{"id", "user_id", "type", "subject", "status", "priority", "created_at"})
		for _, r := range requests {
			writer.Write([]string{
				r.ID, r.UserID, r.Type, r.Subject, r.Status, r.Priority,
				r.CreatedAt.Format(time.RFC3339),
			})
		}
		writer.Flush()
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// CleanupRequests handles DELETE /admin/requests/cleanup?older_than_days=N
func (adc *AdminController) CleanupRequests(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("older_than_days", "90"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "older_than_days must be a positive integer"})
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	result := adc.db.Where("created_at < ? AND status IN ?", cutoff,
		[]string{models.RequestStatusResolved, models.RequestStatusRejected}).
		Delete(&models.UserRequest{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clean up requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Removed %d requests older than %d days", result.RowsAffected, days),
		"deleted": result.RowsAffected,
	})
}
