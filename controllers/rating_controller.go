package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motohub-api/repositories"
	"motohub-api/utils"
)

type RatingController struct {
	ratings     repositories.RatingRepository
	motorcycles repositories.MotorcycleRepository
}

func NewRatingController(ratings repositories.RatingRepository, motorcycles repositories.MotorcycleRepository) *RatingController {
	return &RatingController{
		ratings:     ratings,
		motorcycles: motorcycles,
	}
}

type RateRequest struct {
	Score  int    `json:"score" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// Rate handles POST /motorcycles/:id/ratings. Re-rating updates the
// existing score rather than duplicating it.
func (rc *RatingController) Rate(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := rc.motorcycles.GetByID(motorcycleID); err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch motorcycle"})
		return
	}

	rating, err := rc.ratings.Upsert(userID, motorcycleID, req.Score, req.Review)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating saved", "rating": rating})
}

// List handles GET /motorcycles/:id/ratings, paginated with the score
// distribution attached
func (rc *RatingController) List(c *gin.Context) {
	motorcycleID := c.Param("id")

	page, limit, ok := utils.ParsePageParams(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	ratings, total, err := rc.ratings.GetByMotorcycle(motorcycleID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}

	distribution, err := rc.ratings.Distribution(motorcycleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute distribution"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings":      ratings,
		"distribution": distribution,
		"pagination":   utils.NewPagination(page, limit, total),
	})
}

// Delete handles DELETE /motorcycles/:id/ratings (the caller's own rating)
func (rc *RatingController) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	if err := rc.ratings.Delete(userID, motorcycleID); err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted"})
}

// Mine handles GET /ratings/mine
func (rc *RatingController) Mine(c *gin.Context) {
	userID := c.GetString("user_id")

	ratings, err := rc.ratings.GetByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}
