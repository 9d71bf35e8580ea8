package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub-api/models"
)

// AchievementService evaluates achievement criteria against a user's
// activity and awards any newly earned achievements
type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

// Progress is the per-achievement result of a progress check
type Progress struct {
	Achievement models.Achievement `json:"achievement"`
	Current     int64              `json:"current"`
	Earned      bool               `json:"earned"`
	NewlyEarned bool               `json:"newly_earned"`
}

// CheckProgress evaluates every achievement definition for the user and
// awards missing ones whose threshold is met. Awarding is idempotent:
// already-earned achievements are reported but never duplicated.
func (s *AchievementService) CheckProgress(userID string) ([]Progress, error) {
	var definitions []models.Achievement
	if err := s.db.Order("threshold ASC").Find(&definitions).Error; err != nil {
		return nil, err
	}

	var earned []models.UserAchievement
	if err := s.db.Where("user_id = ?", userID).Find(&earned).Error; err != nil {
		return nil, err
	}
	earnedSet := make(map[string]bool, len(earned))
	for _, ua := range earned {
		earnedSet[ua.AchievementID] = true
	}

	results := make([]Progress, 0, len(definitions))
	for _, def := range definitions {
		current, err := s.criteriaCount(userID, def.Criteria)
		if err != nil {
			return nil, err
		}

		p := Progress{
			Achievement: def,
			Current:     current,
			Earned:      earnedSet[def.ID],
		}

		if !p.Earned && current >= int64(def.Threshold) {
			award := models.UserAchievement{
				ID:            uuid.New().String(),
				UserID:        userID,
				AchievementID: def.ID,
				AwardedAt:     time.Now(),
			}
			if err := s.db.Create(&award).Error; err != nil {
				return nil, err
			}
			p.Earned = true
			p.NewlyEarned = true
		}

		results = append(results, p)
	}

	return results, nil
}

// EarnedByUser lists the user's awarded achievements
func (s *AchievementService) EarnedByUser(userID string) ([]models.UserAchievement, error) {
	achievements := []models.UserAchievement{}
	err := s.db.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("awarded_at DESC").
		Find(&achievements).Error
	return achievements, err
}

func (s *AchievementService) criteriaCount(userID, criteria string) (int64, error) {
	var count int64

	switch criteria {
	case models.CriteriaRatingsGiven:
		err := s.db.Model(&models.Rating{}).Where("user_id = ?", userID).Count(&count).Error
		return count, err
	case models.CriteriaCommentsWritten:
		err := s.db.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&count).Error
		return count, err
	case models.CriteriaGarageSize:
		err := s.db.Model(&models.GarageItem{}).Where("user_id = ?", userID).Count(&count).Error
		return count, err
	case models.CriteriaFavoritesAdded:
		var user models.User
		if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
			return 0, err
		}
		return int64(len(user.Favorites)), nil
	case models.CriteriaGroupsJoined:
		var groups []models.RiderGroup
		if err := s.db.Find(&groups).Error; err != nil {
			return 0, err
		}
		for _, g := range groups {
			if g.Members.Contains(userID) {
				count++
			}
		}
		return count, nil
	default:
		return 0, nil
	}
}
