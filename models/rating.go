package models

import (
	"time"
)

// Rating is one user's score for one motorcycle, unique per (user, motorcycle)
type Rating struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	UserID       string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_ratings_user_moto"`
	MotorcycleID string    `json:"motorcycle_id" gorm:"not null;size:191;uniqueIndex:uk_ratings_user_moto"`
	Score        int       `json:"score" gorm:"not null"`
	Review       string    `json:"review" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}
