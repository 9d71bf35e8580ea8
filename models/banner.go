package models

import (
	"time"
)

// Banner is a promotional banner managed by admins
type Banner struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Title     string    `json:"title" gorm:"not null;size:200"`
	ImageURL  string    `json:"image_url" gorm:"not null;size:500"`
	LinkURL   string    `json:"link_url" gorm:"size:500"`
	Active    bool      `json:"active" gorm:"default:true;index"`
	Position  int       `json:"position" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
