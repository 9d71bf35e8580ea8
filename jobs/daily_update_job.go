package jobs

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"motohub-api/models"
	"motohub-api/services"
)

// DailyUpdateJob perturbs catalog prices and availability and appends
// synthetic new models, emulating an external sync feed. It is
// constructed, started and stopped by the application lifecycle owner;
// there is no package-level state.
type DailyUpdateJob struct {
	db    *gorm.DB
	email *services.EmailService
	cache *services.CacheService
	cron  *cron.Cron
}

func NewDailyUpdateJob(db *gorm.DB, email *services.EmailService, cache *services.CacheService) *DailyUpdateJob {
	return &DailyUpdateJob{
		db:    db,
		email: email,
		cache: cache,
		cron:  cron.New(),
	}
}

// Start schedules the job on the given cron expression
func (j *DailyUpdateJob) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		if _, err := j.Trigger("scheduled"); err != nil {
			log.Printf("Failed to start scheduled update: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid update schedule %q: %w", schedule, err)
	}

	j.cron.Start()
	log.Printf("Daily update job scheduled: %s", schedule)
	return nil
}

// Stop halts the scheduler. In-flight runs finish on their own.
func (j *DailyUpdateJob) Stop() {
	j.cron.Stop()
	log.Println("Daily update job stopped")
}

// Trigger creates a job record and runs the update in the background,
// returning the job id for status polling
func (j *DailyUpdateJob) Trigger(trigger string) (string, error) {
	job := models.UpdateJob{
		ID:        uuid.New().String(),
		Status:    models.JobStatusRunning,
		Trigger:   trigger,
		StartedAt: time.Now(),
	}
	if err := j.db.Create(&job).Error; err != nil {
		return "", err
	}

	go j.run(job.ID)
	return job.ID, nil
}

// run executes one full update pass. Per-item failures are logged and
// skipped; only the counts make it into the persisted summary.
func (j *DailyUpdateJob) run(jobID string) {
	log.Printf("Daily update %s started", jobID)

	var pricesUpdated, availabilityChanges, itemErrors int

	var motorcycles []models.Motorcycle
	if err := j.db.Find(&motorcycles).Error; err != nil {
		j.finish(jobID, models.JobStatusFailed, 0, 0, 0, 0, 1, fmt.Sprintf("failed to load catalog: %v", err))
		return
	}

	for i := range motorcycles {
		m := &motorcycles[i]
		updates := map[string]interface{}{}

		// Drift each price within ±5%
		variance := (rand.Float64() - 0.5) * 0.10
		newPrice := roundCents(m.PriceUSD * (1 + variance))
		if newPrice != m.PriceUSD {
			updates["price_usd"] = newPrice
			pricesUpdated++
		}

		// Occasionally rotate availability
		if next, ok := nextAvailability(m.Availability, rand.Float64()); ok {
			updates["availability"] = next
			availabilityChanges++
		}

		if len(updates) == 0 {
			continue
		}
		if err := j.db.Model(&models.Motorcycle{}).Where("id = ?", m.ID).Updates(updates).Error; err != nil {
			log.Printf("Daily update %s: failed to update motorcycle %s: %v", jobID, m.ID, err)
			itemErrors++
		}
	}

	newModels := j.appendSyntheticModels(jobID, &itemErrors)
	alertsTriggered := j.checkPriceAlerts(jobID, &itemErrors)

	j.cache.Invalidate(context.Background(), "motohub:category-summary", "motohub:dashboard-stats")

	summary := fmt.Sprintf("%d prices updated, %d availability changes, %d new models, %d alerts triggered, %d item errors",
		pricesUpdated, availabilityChanges, newModels, alertsTriggered, itemErrors)
	j.finish(jobID, models.JobStatusCompleted, pricesUpdated, availabilityChanges, newModels, alertsTriggered, itemErrors, summary)

	log.Printf("Daily update %s completed: %s", jobID, summary)
}

func (j *DailyUpdateJob) finish(jobID, status string, prices, availability, newModels, alerts, errors int, summary string) {
	now := time.Now()
	err := j.db.Model(&models.UpdateJob{}).Where("id = ?", jobID).Updates(map[string]interface{}{
		"status":               status,
		"finished_at":          now,
		"prices_updated":       prices,
		"availability_changes": availability,
		"new_models":           newModels,
		"alerts_triggered":     alerts,
		"item_errors":          errors,
		"summary":              summary,
	}).Error
	if err != nil {
		log.Printf("Daily update %s: failed to persist summary: %v", jobID, err)
	}
}

// roundCents keeps fabricated prices to two decimals
func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// nextAvailability decides whether and how the availability state
// rotates, from a roll in [0, 1)
func nextAvailability(current string, roll float64) (string, bool) {
	switch current {
	case models.AvailabilityAvailable:
		if roll < 0.02 {
			return models.AvailabilityLimitedStock, true
		}
	case models.AvailabilityLimitedStock:
		if roll < 0.03 {
			return models.AvailabilityOutOfStock, true
		}
		if roll < 0.08 {
			return models.AvailabilityAvailable, true
		}
	case models.AvailabilityOutOfStock:
		if roll < 0.10 {
			return models.AvailabilityAvailable, true
		}
	}
	return "", false
}

var syntheticModels = []models.Motorcycle{
	{Manufacturer: "Yamaha", Model: "FZ-X Special", Category: "Commuter", EngineDisplacement: 149, Horsepower: 12.4, PriceUSD: 1650, SeatHeight: 810, GroundClearance: 165},
	{Manufacturer: "Honda", Model: "Hornet Concept", Category: "Naked", EngineDisplacement: 750, Horsepower: 90.5, PriceUSD: 8200, SeatHeight: 795, GroundClearance: 140},
	{Manufacturer: "KTM", Model: "Duke R Edition", Category: "Naked", EngineDisplacement: 390, Horsepower: 44, PriceUSD: 5900, SeatHeight: 820, GroundClearance: 185},
	{Manufacturer: "Royal Enfield", Model: "Interceptor Trail", Category: "Adventure", EngineDisplacement: 648, Horsepower: 47, PriceUSD: 6400, SeatHeight: 805, GroundClearance: 174},
	{Manufacturer: "Kawasaki", Model: "Ninja Touring SE", Category: "Sport", EngineDisplacement: 649, Horsepower: 67, PriceUSD: 7800, SeatHeight: 790, GroundClearance: 130},
}

// appendSyntheticModels inserts a couple of fabricated new-model rows
// for the current year
func (j *DailyUpdateJob) appendSyntheticModels(jobID string, itemErrors *int) int {
	count := 1 + rand.Intn(3)
	created := 0

	for i := 0; i < count; i++ {
		template := syntheticModels[rand.Intn(len(syntheticModels))]

		m := template
		m.ID = uuid.New().String()
		m.Year = time.Now().Year()
		m.Availability = models.AvailabilityLimitedStock
		m.Description = fmt.Sprintf("Newly announced %s %s for %d.", m.Manufacturer, m.Model, m.Year)
		m.Specialisations = models.StringSlice{"new-arrival"}
		m.InterestScore = 60 + rand.Float64()*30
		m.TransmissionType = "Manual"
		m.GearCount = 6
		m.BrakingSystem = "Dual Disc"
		m.SuspensionType = "Telescopic"
		m.TyreType = "Tubeless"
		m.HeadlightType = "LED"
		m.FuelType = "Petrol"
		m.EngineType = "Single Cylinder"
		m.ABSAvailable = true

		if err := j.db.Create(&m).Error; err != nil {
			log.Printf("Daily update %s: failed to insert synthetic model: %v", jobID, err)
			*itemErrors++
			continue
		}
		created++
	}

	return created
}

// checkPriceAlerts triggers and emails any alert whose target the
// current price now meets. Email failures do not block the trigger.
func (j *DailyUpdateJob) checkPriceAlerts(jobID string, itemErrors *int) int {
	var alerts []models.PriceAlert
	err := j.db.Preload("Motorcycle").Where("triggered = ?", false).Find(&alerts).Error
	if err != nil {
		log.Printf("Daily update %s: failed to load price alerts: %v", jobID, err)
		*itemErrors++
		return 0
	}

	triggered := 0
	for _, alert := range alerts {
		if alert.Motorcycle.ID == "" || alert.Motorcycle.PriceUSD > alert.TargetPrice {
			continue
		}

		now := time.Now()
		err := j.db.Model(&models.PriceAlert{}).Where("id = ?", alert.ID).Updates(map[string]interface{}{
			"triggered":    true,
			"triggered_at": now,
		}).Error
		if err != nil {
			log.Printf("Daily update %s: failed to trigger alert %s: %v", jobID, alert.ID, err)
			*itemErrors++
			continue
		}
		triggered++

		var user models.User
		if err := j.db.First(&user, "id = ?", alert.UserID).Error; err != nil {
			log.Printf("Daily update %s: alert %s owner missing: %v", jobID, alert.ID, err)
			continue
		}
		if err := j.email.SendPriceAlert(&user, &alert.Motorcycle, &alert); err != nil {
			log.Printf("Daily update %s: %v", jobID, err)
		}
	}

	return triggered
}
