package database

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"motohub-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Motorcycle{},
		&models.Rating{},
		&models.Comment{},
		&models.GarageItem{},
		&models.PriceAlert{},
		&models.RiderGroup{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Banner{},
		&models.SearchLog{},
		&models.EngagementLog{},
		&models.UserRequest{},
		&models.UpdateJob{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Composite indexes backing the hot listing and aggregation queries

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_motorcycles_category_interest ON motorcycles(category, interest_score DESC)").Error; err != nil {
		log.Printf("Warning: Could not create index for motorcycles category/interest: %v", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_motorcycles_year_price ON motorcycles(year DESC, price_usd ASC)").Error; err != nil {
		log.Printf("Warning: Could not create index for motorcycles year/price: %v", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_ratings_moto_score ON ratings(motorcycle_id, score)").Error; err != nil {
		log.Printf("Warning: Could not create index for ratings: %v", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_moto_parent ON comments(motorcycle_id, parent_id)").Error; err != nil {
		log.Printf("Warning: Could not create index for comments: %v", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_search_logs_created_query ON search_logs(created_at, query)").Error; err != nil {
		log.Printf("Warning: Could not create index for search_logs: %v", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_price_alerts_triggered ON price_alerts(triggered, motorcycle_id)").Error; err != nil {
		log.Printf("Warning: Could not create index for price_alerts: %v", err)
	}

	return nil
}
