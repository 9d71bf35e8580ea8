package models

import (
	"time"
)

// SearchLog records one executed catalog search. ClickedResults holds
// the motorcycle ids the user clicked from the result list.
type SearchLog struct {
	ID             string      `json:"id" gorm:"primaryKey;size:191"`
	UserID         *string     `json:"user_id" gorm:"size:191;index"`
	Query          string      `json:"query" gorm:"size:255;index"`
	Filters        string      `json:"filters" gorm:"type:text"` // JSON snapshot of active filters
	ResultCount    int         `json:"result_count"`
	ClickedResults StringSlice `json:"clicked_results"`
	CreatedAt      time.Time   `json:"created_at" gorm:"index"`
}

// EngagementLog records a single user engagement event (view, favorite,
// compare, share...)
type EngagementLog struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	UserID       *string   `json:"user_id" gorm:"size:191;index"`
	EventType    string    `json:"event_type" gorm:"not null;size:50;index"`
	MotorcycleID *string   `json:"motorcycle_id" gorm:"size:191;index"`
	Metadata     string    `json:"metadata" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}
