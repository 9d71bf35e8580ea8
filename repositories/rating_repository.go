package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub-api/models"
)

// RatingDistribution maps score (1-5) to the number of ratings with it
type RatingDistribution map[int]int64

type RatingRepository interface {
	Upsert(userID, motorcycleID string, score int, review string) (*models.Rating, error)
	Delete(userID, motorcycleID string) error
	GetByMotorcycle(motorcycleID string, page, limit int) ([]models.Rating, int64, error)
	GetByUser(userID string) ([]models.Rating, error)
	Distribution(motorcycleID string) (RatingDistribution, error)
	RecomputeRollup(motorcycleID string) (avg float64, count int64, err error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert creates the user's rating for the motorcycle or updates the
// existing one, then recomputes and persists the rollup on the
// motorcycle row. The two writes are not tied by a transaction; readers
// can observe the rating before the refreshed rollup.
func (r *ratingRepository) Upsert(userID, motorcycleID string, score int, review string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND motorcycle_id = ?", userID, motorcycleID).First(&rating).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		rating = models.Rating{
			ID:           uuid.New().String(),
			UserID:       userID,
			MotorcycleID: motorcycleID,
			Score:        score,
			Review:       review,
		}
		if err := r.db.Create(&rating).Error; err != nil {
			return nil, err
		}
	} else {
		rating.Score = score
		rating.Review = review
		rating.UpdatedAt = time.Now()
		if err := r.db.Save(&rating).Error; err != nil {
			return nil, err
		}
	}

	if _, _, err := r.RecomputeRollup(motorcycleID); err != nil {
		return nil, err
	}

	return &rating, nil
}

func (r *ratingRepository) Delete(userID, motorcycleID string) error {
	result := r.db.Where("user_id = ? AND motorcycle_id = ?", userID, motorcycleID).Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	_, _, err := r.RecomputeRollup(motorcycleID)
	return err
}

func (r *ratingRepository) GetByMotorcycle(motorcycleID string, page, limit int) ([]models.Rating, int64, error) {
	var total int64
	if err := r.db.Model(&models.Rating{}).Where("motorcycle_id = ?", motorcycleID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ratings := []models.Rating{}
	err := r.db.Preload("User").
		Where("motorcycle_id = ?", motorcycleID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&ratings).Error
	if err != nil {
		return nil, 0, err
	}

	return ratings, total, nil
}

func (r *ratingRepository) GetByUser(userID string) ([]models.Rating, error) {
	ratings := []models.Rating{}
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) Distribution(motorcycleID string) (RatingDistribution, error) {
	type bucket struct {
		Score int
		Count int64
	}
	var buckets []bucket
	err := r.db.Model(&models.Rating{}).
		Select("score, COUNT(*) as count").
		Where("motorcycle_id = ?", motorcycleID).
		Group("score").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	distribution := RatingDistribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, b := range buckets {
		distribution[b.Score] = b.Count
	}
	return distribution, nil
}

// RecomputeRollup runs a fresh aggregation over all ratings for the
// motorcycle and persists average and count onto the motorcycle row
func (r *ratingRepository) RecomputeRollup(motorcycleID string) (float64, int64, error) {
	type rollup struct {
		Avg   float64
		Count int64
	}
	var agg rollup
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) as avg, COUNT(*) as count").
		Where("motorcycle_id = ?", motorcycleID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.Model(&models.Motorcycle{}).
		Where("id = ?", motorcycleID).
		Updates(map[string]interface{}{
			"rating_average": agg.Avg,
			"rating_count":   agg.Count,
		}).Error
	if err != nil {
		return 0, 0, err
	}

	return agg.Avg, agg.Count, nil
}
