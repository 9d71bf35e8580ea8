package models

import (
	"time"
)

// Update job statuses
const (
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// UpdateJob is the persisted summary of one daily update run. Per-item
// failures are logged and counted, never surfaced synchronously.
type UpdateJob struct {
	ID                  string     `json:"id" gorm:"primaryKey;size:191"`
	Status              string     `json:"status" gorm:"size:20;default:'running'"`
	Trigger             string     `json:"trigger" gorm:"size:20"` // "scheduled" or "manual"
	StartedAt           time.Time  `json:"started_at"`
	FinishedAt          *time.Time `json:"finished_at"`
	PricesUpdated       int        `json:"prices_updated"`
	AvailabilityChanges int        `json:"availability_changes"`
	NewModels           int        `json:"new_models"`
	AlertsTriggered     int        `json:"alerts_triggered"`
	ItemErrors          int        `json:"item_errors"`
	Summary             string     `json:"summary" gorm:"size:500"`
}
