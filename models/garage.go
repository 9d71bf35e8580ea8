package models

import (
	"time"
)

// GarageItem is one motorcycle in a user's virtual garage, unique per
// (user, motorcycle)
type GarageItem struct {
	ID            string     `json:"id" gorm:"primaryKey;size:191"`
	UserID        string     `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_garage_user_moto"`
	MotorcycleID  string     `json:"motorcycle_id" gorm:"not null;size:191;uniqueIndex:uk_garage_user_moto"`
	Nickname      string     `json:"nickname" gorm:"size:100"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PurchasePrice *float64   `json:"purchase_price"`
	OdometerKM    float64    `json:"odometer_km"`
	Notes         string     `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Motorcycle Motorcycle `json:"motorcycle" gorm:"foreignKey:MotorcycleID"`
}
