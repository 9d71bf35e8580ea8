package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"motohub-api/models"
	"motohub-api/repositories"
	"motohub-api/services"
	"motohub-api/utils"
)

type MotorcycleController struct {
	repo    repositories.MotorcycleRepository
	pricing *services.PricingService
	cache   *services.CacheService
}

func NewMotorcycleController(repo repositories.MotorcycleRepository, pricing *services.PricingService, cache *services.CacheService) *MotorcycleController {
	return &MotorcycleController{
		repo:    repo,
		pricing: pricing,
		cache:   cache,
	}
}

// parseFilters reads every optional listing filter from the query
// string. Absent or malformed parameters impose no constraint.
func (mc *MotorcycleController) parseFilters(c *gin.Context) repositories.MotorcycleFilters {
	filters := repositories.MotorcycleFilters{
		Search:           c.Query("search"),
		Manufacturer:     c.Query("manufacturer"),
		Category:         c.Query("category"),
		TransmissionType: c.Query("transmission_type"),
		EngineType:       c.Query("engine_type"),
		BrakingSystem:    c.Query("braking_system"),
		SuspensionType:   c.Query("suspension_type"),
		TyreType:         c.Query("tyre_type"),
		HeadlightType:    c.Query("headlight_type"),
		FuelType:         c.Query("fuel_type"),
		ABSAvailable:     utils.ParseBoolQuery(c, "abs_available"),

		YearMin:            utils.ParseIntQuery(c, "year_min"),
		YearMax:            utils.ParseIntQuery(c, "year_max"),
		PriceMin:           utils.ParseFloatQuery(c, "price_min"),
		PriceMax:           utils.ParseFloatQuery(c, "price_max"),
		DisplacementMin:    utils.ParseFloatQuery(c, "displacement_min"),
		DisplacementMax:    utils.ParseFloatQuery(c, "displacement_max"),
		HorsepowerMin:      utils.ParseFloatQuery(c, "horsepower_min"),
		HorsepowerMax:      utils.ParseFloatQuery(c, "horsepower_max"),
		MileageMin:         utils.ParseFloatQuery(c, "mileage_min"),
		MileageMax:         utils.ParseFloatQuery(c, "mileage_max"),
		GroundClearanceMin: utils.ParseFloatQuery(c, "ground_clearance_min"),
		GroundClearanceMax: utils.ParseFloatQuery(c, "ground_clearance_max"),
		SeatHeightMin:      utils.ParseFloatQuery(c, "seat_height_min"),
		SeatHeightMax:      utils.ParseFloatQuery(c, "seat_height_max"),
	}

	if hide := utils.ParseBoolQuery(c, "hide_unavailable"); hide != nil {
		filters.HideUnavailable = *hide
	}

	if raw := c.Query("specialisations"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filters.Specialisations = append(filters.Specialisations, tag)
			}
		}
	}

	// An unmapped region code imposes no constraint
	if region := c.Query("region"); region != "" {
		filters.Manufacturers = mc.pricing.Manufacturers(region)
	}

	return filters
}

// List handles GET /motorcycles
func (mc *MotorcycleController) List(c *gin.Context) {
	page, limit, ok := utils.ParsePageParams(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	filters := mc.parseFilters(c)
	opts := repositories.ListOptions{
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      page,
		Limit:     limit,
	}

	motorcycles, total, err := mc.repo.List(filters, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch motorcycles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"motorcycles": motorcycles,
		"pagination":  utils.NewPagination(page, limit, total),
	})
}

// Detail handles GET /motorcycles/:id, attaching synthesized vendor
// prices for the requested region
func (mc *MotorcycleController) Detail(c *gin.Context) {
	motorcycle, err := mc.repo.GetByID(c.Param("id"))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch motorcycle"})
		return
	}

	region := c.DefaultQuery("region", "US")

	c.JSON(http.StatusOK, gin.H{
		"motorcycle":    motorcycle,
		"vendor_prices": mc.pricing.VendorPrices(motorcycle, region),
	})
}

type CompareRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// Compare handles POST /motorcycles/compare. Duplicate ids are silently
// collapsed; more than 3 distinct ids is a 400, any unknown id a 404.
func (mc *MotorcycleController) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unique := dedupeIDs(req.IDs)
	if len(unique) > 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At most 3 motorcycles can be compared"})
		return
	}

	motorcycles, err := mc.repo.GetByIDs(unique)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch motorcycles"})
		return
	}

	if len(motorcycles) != len(unique) {
		found := make(map[string]bool, len(motorcycles))
		for _, m := range motorcycles {
			found[m.ID] = true
		}
		for _, id := range unique {
			if !found[id] {
				c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found: " + id})
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"motorcycles": motorcycles})
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}

const categorySummaryCacheKey = "motohub:category-summary"

// CategorySummary handles GET /motorcycles/categories/summary. The
// unfiltered summary is served from cache when available.
func (mc *MotorcycleController) CategorySummary(c *gin.Context) {
	filters := mc.parseFilters(c)
	unfiltered := len(c.Request.URL.Query()) == 0

	if unfiltered {
		var cached []repositories.CategorySummary
		if mc.cache.GetJSON(c.Request.Context(), categorySummaryCacheKey, &cached) {
			c.JSON(http.StatusOK, gin.H{"categories": cached})
			return
		}
	}

	summaries, err := mc.repo.CategorySummaries(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category summary"})
		return
	}

	if unfiltered {
		mc.cache.SetJSON(c.Request.Context(), categorySummaryCacheKey, summaries)
	}

	c.JSON(http.StatusOK, gin.H{"categories": summaries})
}

// Manufacturers handles GET /motorcycles/manufacturers, a small helper
// listing for filter dropdowns
func (mc *MotorcycleController) Manufacturers(c *gin.Context) {
	manufacturers, err := mc.repo.Manufacturers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch manufacturers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"manufacturers": manufacturers,
		"categories":    models.Categories,
	})
}
