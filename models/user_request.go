package models

import (
	"time"
)

// User request statuses and priorities
const (
	RequestStatusOpen       = "open"
	RequestStatusInProgress = "in_progress"
	RequestStatusResolved   = "resolved"
	RequestStatusRejected   = "rejected"

	RequestPriorityLow    = "low"
	RequestPriorityMedium = "medium"
	RequestPriorityHigh   = "high"
)

// UserRequest is a feature request or bug report triaged by admins
type UserRequest struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	Type      string    `json:"type" gorm:"size:30;default:'feature'"`
	Subject   string    `json:"subject" gorm:"not null;size:200"`
	Body      string    `json:"body" gorm:"type:text"`
	Status    string    `json:"status" gorm:"size:20;default:'open';index"`
	Priority  string    `json:"priority" gorm:"size:20;default:'medium'"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}
