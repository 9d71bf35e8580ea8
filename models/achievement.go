package models

import (
	"time"
)

// Achievement criteria kinds evaluated by the progress check
const (
	CriteriaRatingsGiven    = "ratings_given"
	CriteriaCommentsWritten = "comments_written"
	CriteriaFavoritesAdded  = "favorites_added"
	CriteriaGarageSize      = "garage_size"
	CriteriaGroupsJoined    = "groups_joined"
)

// Achievement is a public definition, seeded at startup
type Achievement struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null;size:50"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"size:255"`
	Criteria    string    `json:"criteria" gorm:"not null;size:50"`
	Threshold   int       `json:"threshold" gorm:"not null"`
	Icon        string    `json:"icon" gorm:"size:100"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserAchievement records an awarded achievement, unique per (user, achievement)
type UserAchievement struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	UserID        string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_user_achievement"`
	AchievementID string    `json:"achievement_id" gorm:"not null;size:191;uniqueIndex:uk_user_achievement"`
	AwardedAt     time.Time `json:"awarded_at"`

	Achievement Achievement `json:"achievement" gorm:"foreignKey:AchievementID"`
}
