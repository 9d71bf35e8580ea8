package models

import (
	"time"
)

// PriceAlert notifies its owner when the motorcycle's price drops to or
// below the target. Checked by the daily update job.
type PriceAlert struct {
	ID           string     `json:"id" gorm:"primaryKey;size:191"`
	UserID       string     `json:"user_id" gorm:"not null;size:191;index"`
	MotorcycleID string     `json:"motorcycle_id" gorm:"not null;size:191;index"`
	TargetPrice  float64    `json:"target_price" gorm:"not null"`
	Triggered    bool       `json:"triggered" gorm:"default:false"`
	TriggeredAt  *time.Time `json:"triggered_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Motorcycle Motorcycle `json:"motorcycle" gorm:"foreignKey:MotorcycleID"`
}
