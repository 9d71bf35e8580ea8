package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"motohub-api/config"
	"motohub-api/database"
	"motohub-api/jobs"
	"motohub-api/middleware"
	"motohub-api/routes"
	"motohub-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed catalog, achievements and admin account
	if cfg.SeedOnStart {
		if err := database.SeedData(db); err != nil {
			log.Printf("Warning: Failed to seed database: %v", err)
		}
	}

	// Shared services
	cache := services.NewCacheService(cfg.RedisURL, 10*time.Minute)
	email := services.NewEmailService(cfg)

	// Nightly catalog refresh
	updateJob := jobs.NewDailyUpdateJob(db, email, cache)
	if err := updateJob.Start(cfg.UpdateSchedule); err != nil {
		log.Fatal("Failed to schedule daily update job:", err)
	}
	defer updateJob.Stop()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, cache, email, updateJob)

	// Start server
	log.Printf("Starting MotoHub API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/health", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
