package repositories

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"motohub-api/models"
)

// SearchTrend is one search term with its frequency in a time window
type SearchTrend struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// ClickThrough counts how often a motorcycle appeared among clicked
// search results in a time window
type ClickThrough struct {
	MotorcycleID string `json:"motorcycle_id"`
	Clicks       int64  `json:"clicks"`
}

// EngagementFunnel groups engagement events by type in a time window
type EngagementFunnel struct {
	EventType string `json:"event_type"`
	Count     int64  `json:"count"`
}

type AnalyticsRepository interface {
	LogSearch(log *models.SearchLog) error
	LogEngagement(log *models.EngagementLog) error
	SearchTrends(since time.Time, limit int) ([]SearchTrend, error)
	ClickThroughs(since time.Time, limit int) ([]ClickThrough, error)
	Funnel(since time.Time) ([]EngagementFunnel, error)
	RoleDistribution() (map[string]int64, error)
	RecentActivity(days int) (searches, engagements int64, err error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) LogSearch(log *models.SearchLog) error {
	return r.db.Create(log).Error
}

func (r *analyticsRepository) LogEngagement(log *models.EngagementLog) error {
	return r.db.Create(log).Error
}

func (r *analyticsRepository) SearchTrends(since time.Time, limit int) ([]SearchTrend, error) {
	trends := []SearchTrend{}
	err := r.db.Model(&models.SearchLog{}).
		Select("query, COUNT(*) as count").
		Where("created_at >= ? AND query != ''", since).
		Group("query").
		Order("count DESC").
		Limit(limit).
		Scan(&trends).Error
	return trends, err
}

// ClickThroughs counts motorcycle id occurrences across the
// clicked_results arrays of search logs in the window. The arrays are
// small, so the expansion happens in process rather than in the store.
func (r *analyticsRepository) ClickThroughs(since time.Time, limit int) ([]ClickThrough, error) {
	logs := []models.SearchLog{}
	err := r.db.Where("created_at >= ?", since).Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return CountClicks(logs, limit), nil
}

// CountClicks tallies clicked motorcycle ids across search logs and
// returns the top entries by click count
func CountClicks(logs []models.SearchLog, limit int) []ClickThrough {
	counts := map[string]int64{}
	order := []string{}

	for _, log := range logs {
		for _, id := range log.ClickedResults {
			if _, ok := counts[id]; !ok {
				order = append(order, id)
			}
			counts[id]++
		}
	}

	results := make([]ClickThrough, 0, len(order))
	for _, id := range order {
		results = append(results, ClickThrough{MotorcycleID: id, Clicks: counts[id]})
	}

	// Ties keep first-seen order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Clicks > results[j].Clicks
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (r *analyticsRepository) Funnel(since time.Time) ([]EngagementFunnel, error) {
	funnel := []EngagementFunnel{}
	err := r.db.Model(&models.EngagementLog{}).
		Select("event_type, COUNT(*) as count").
		Where("created_at >= ?", since).
		Group("event_type").
		Order("count DESC").
		Scan(&funnel).Error
	return funnel, err
}

func (r *analyticsRepository) RoleDistribution() (map[string]int64, error) {
	type bucket struct {
		Role  string
		Count int64
	}
	var buckets []bucket
	err := r.db.Model(&models.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	distribution := map[string]int64{}
	for _, b := range buckets {
		distribution[b.Role] = b.Count
	}
	return distribution, nil
}

func (r *analyticsRepository) RecentActivity(days int) (int64, int64, error) {
	since := time.Now().AddDate(0, 0, -days)

	var searches int64
	if err := r.db.Model(&models.SearchLog{}).Where("created_at >= ?", since).Count(&searches).Error; err != nil {
		return 0, 0, err
	}

	var engagements int64
	if err := r.db.Model(&models.EngagementLog{}).Where("created_at >= ?", since).Count(&engagements).Error; err != nil {
		return 0, 0, err
	}

	return searches, engagements, nil
}
