package models

import (
	"time"
)

// RiderGroup is a public group. Membership is a plain list of user ids
// embedded on the group, so joins and leaves are single-row updates.
type RiderGroup struct {
	ID          string      `json:"id" gorm:"primaryKey;size:191"`
	Name        string      `json:"name" gorm:"not null;size:100"`
	Description string      `json:"description" gorm:"type:text"`
	Region      string      `json:"region" gorm:"size:10"`
	ImageURL    string      `json:"image_url" gorm:"size:500"`
	OwnerID     string      `json:"owner_id" gorm:"not null;size:191;index"`
	Members     StringSlice `json:"members"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
