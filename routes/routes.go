package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motohub-api/config"
	"motohub-api/controllers"
	"motohub-api/jobs"
	"motohub-api/middleware"
	"motohub-api/models"
	"motohub-api/repositories"
	"motohub-api/services"
)

// SetupCORS returns permissive CORS handling for browser clients
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, cache *services.CacheService, email *services.EmailService, updateJob *jobs.DailyUpdateJob) {
	// Repositories and services
	motorcycleRepo := repositories.NewMotorcycleRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)
	pricingService := services.NewPricingService()
	achievementService := services.NewAchievementService(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	socialAuthController := controllers.NewSocialAuthController(db, cfg)
	motorcycleController := controllers.NewMotorcycleController(motorcycleRepo, pricingService, cache)
	favoriteController := controllers.NewFavoriteController(db)
	ratingController := controllers.NewRatingController(ratingRepo, motorcycleRepo)
	commentController := controllers.NewCommentController(commentRepo, motorcycleRepo)
	garageController := controllers.NewGarageController(db)
	priceAlertController := controllers.NewPriceAlertController(db)
	riderGroupController := controllers.NewRiderGroupController(db)
	achievementController := controllers.NewAchievementController(db, achievementService)
	bannerController := controllers.NewBannerController(db)
	analyticsController := controllers.NewAnalyticsController(analyticsRepo)
	userRequestController := controllers.NewUserRequestController(db)
	adminController := controllers.NewAdminController(db, motorcycleRepo, analyticsRepo, cache)
	updateController := controllers.NewUpdateController(db, updateJob)

	legacy := controllers.ResolveLegacySession(db)
	authRequired := middleware.AuthMiddleware(cfg.JWTSecret, legacy)
	authOptional := middleware.OptionalAuth(cfg.JWTSecret, legacy)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "motohub-api",
		})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(300, 50))

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/profile", authController.LegacyProfile)
		if gin.Mode() == gin.DebugMode {
			auth.DELETE("/users", authController.DeleteByEmail)
		}
		auth.GET("/google", socialAuthController.GoogleLogin)
		auth.GET("/google/callback", socialAuthController.GoogleCallback)
		auth.GET("/me", authRequired, authController.Me)
	}

	// Catalog routes (public)
	motorcycles := v1.Group("/motorcycles")
	{
		motorcycles.GET("", motorcycleController.List)
		motorcycles.POST("/compare", motorcycleController.Compare)
		motorcycles.GET("/manufacturers", motorcycleController.Manufacturers)
		motorcycles.GET("/categories/summary", motorcycleController.CategorySummary)
		motorcycles.GET("/:id", motorcycleController.Detail)
		motorcycles.GET("/:id/ratings", ratingController.List)
		motorcycles.POST("/:id/ratings", authRequired, ratingController.Rate)
		motorcycles.DELETE("/:id/ratings", authRequired, ratingController.Delete)
		motorcycles.GET("/:id/comments", commentController.List)
		motorcycles.POST("/:id/comments", authRequired, commentController.Create)
	}
	v1.GET("/banners", bannerController.Active)

	// Rider groups are browsable without an account
	v1.GET("/groups", riderGroupController.List)
	v1.GET("/groups/:id", riderGroupController.Get)
	v1.GET("/achievements", achievementController.List)

	// Analytics ingestion accepts anonymous traffic
	analytics := v1.Group("/analytics")
	analytics.Use(authOptional)
	{
		analytics.POST("/search", analyticsController.LogSearch)
		analytics.POST("/engagement", analyticsController.LogEngagement)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(authRequired)
	{
		favorites := protected.Group("/favorites")
		{
			favorites.GET("", favoriteController.List)
			favorites.POST("/:id", favoriteController.Add)
			favorites.DELETE("/:id", favoriteController.Remove)
		}

		protected.GET("/ratings/mine", ratingController.Mine)

		comments := protected.Group("/comments")
		{
			comments.DELETE("/:id", commentController.Delete)
			comments.POST("/:id/like", commentController.Like)
			comments.DELETE("/:id/like", commentController.Unlike)
		}

		garage := protected.Group("/garage")
		{
			garage.GET("", garageController.List)
			garage.POST("", garageController.Add)
			garage.PUT("/:id", garageController.Update)
			garage.DELETE("/:id", garageController.Remove)
			garage.GET("/stats", garageController.Stats)
		}

		alerts := protected.Group("/price-alerts")
		{
			alerts.GET("", priceAlertController.List)
			alerts.POST("", priceAlertController.Create)
			alerts.PUT("/:id", priceAlertController.Update)
			alerts.DELETE("/:id", priceAlertController.Delete)
		}

		groups := protected.Group("/groups")
		{
			groups.POST("", riderGroupController.Create)
			groups.PUT("/:id", riderGroupController.Update)
			groups.DELETE("/:id", riderGroupController.Delete)
			groups.POST("/:id/join", riderGroupController.Join)
			groups.DELETE("/:id/leave", riderGroupController.Leave)
		}

		achievements := protected.Group("/achievements")
		{
			achievements.GET("/mine", achievementController.Mine)
			achievements.POST("/check", achievementController.Check)
		}

		requests := protected.Group("/requests")
		{
			requests.POST("", userRequestController.Create)
			requests.GET("/mine", userRequestController.Mine)
		}
	}

	// Analytics dashboards, readable by moderators as well as admins
	dashboards := v1.Group("/admin/analytics")
	dashboards.Use(authRequired, middleware.RequireRole(models.RoleModerator, models.RoleAdmin))
	{
		dashboards.GET("/search-trends", analyticsController.SearchTrends)
		dashboards.GET("/click-throughs", analyticsController.ClickThroughs)
		dashboards.GET("/funnel", analyticsController.Funnel)
	}

	// Batch update system
	updates := v1.Group("/update-system")
	updates.Use(authRequired, middleware.RequireRole(models.RoleAdmin))
	{
		updates.POST("/run-daily-update", updateController.RunDailyUpdate)
		updates.GET("/job-status/:id", updateController.JobStatus)
	}

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(authRequired, middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", adminController.ListUsers)
		admin.PUT("/users/:id/role", adminController.UpdateUserRole)
		admin.GET("/dashboard", adminController.Dashboard)

		admin.GET("/banners", bannerController.List)
		admin.POST("/banners", bannerController.Create)
		admin.PUT("/banners/:id", bannerController.Update)
		admin.DELETE("/banners/:id", bannerController.Delete)

		admin.GET("/requests", adminController.ListRequests)
		admin.PUT("/requests/:id", adminController.Triage)
		admin.GET("/requests/export", adminController.ExportRequests)
		admin.DELETE("/requests/cleanup", adminController.CleanupRequests)
	}
}
