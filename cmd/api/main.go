package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"budgetcast/internal/config"
	"budgetcast/internal/database"
	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/handlers"
	"budgetcast/internal/logger"
	"budgetcast/internal/middleware"
	"budgetcast/internal/services"
	"budgetcast/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "budgetcast/internal/docs" // Import swagger docs
)

// @title           Budgetcast API
// @version         1.0
// @description     Budgetcast tracks recurring and one-time income and expenses, investment portfolios and a wishlist, and projects future cash balances.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey PipelineKey
// @in header
// @name X-API-Key
// @description Shared secret of the snapshot pipeline.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	settingService := services.NewSettingService(db, services.SettingDefaults{
		Currency:         appConfig.DefaultCurrency,
		ProjectionMonths: appConfig.ProjectionMonths,
	})
	wishlistService := services.NewWishlistService(db)
	projectionService := services.NewProjectionService(db, settingService, wishlistService, appConfig.AffordabilityMonths)
	snapshotService := services.NewSnapshotService(db, projectionService)
	recurringService := services.NewRecurringItemService(db)
	oneTimeService := services.NewOneTimeItemService(db)
	portfolioService := services.NewPortfolioService(db)
	holdingService := services.NewHoldingService(db)
	categoryService := services.NewWishlistCategoryService(db)
	paydayService := services.NewPaydayService(db)

	// Initialize handlers
	recurringHandler := handlers.NewRecurringItemHandler(recurringService)
	oneTimeHandler := handlers.NewOneTimeItemHandler(oneTimeService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	holdingHandler := handlers.NewHoldingHandler(holdingService)
	categoryHandler := handlers.NewWishlistCategoryHandler(categoryService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService, projectionService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)
	settingHandler := handlers.NewSettingHandler(settingService)
	paydayHandler := handlers.NewPaydayHandler(paydayService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Scheduled snapshots
	if appConfig.SnapshotSchedule != "" {
		scheduler, err := startSnapshotSchedule(appConfig.SnapshotSchedule, snapshotService)
		if err != nil {
			return fmt.Errorf("failed to schedule snapshots: %w", err)
		}
		defer scheduler.Stop()
	}

	// Initialize Gin router
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Recurring income and expense routes
	recurring := v1.Group("/recurring")
	recurring.POST("", recurringHandler.CreateRecurringItem)
	recurring.GET("", recurringHandler.GetRecurringItems)
	recurring.GET("/:id", recurringHandler.GetRecurringItem)
	recurring.PUT("/:id", recurringHandler.UpdateRecurringItem)
	recurring.DELETE("/:id", recurringHandler.DeleteRecurringItem)

	// One-time income and expense routes
	oneTime := v1.Group("/one-time")
	oneTime.POST("", oneTimeHandler.CreateOneTimeItem)
	oneTime.GET("", oneTimeHandler.GetOneTimeItems)
	oneTime.GET("/:id", oneTimeHandler.GetOneTimeItem)
	oneTime.PUT("/:id", oneTimeHandler.UpdateOneTimeItem)
	oneTime.DELETE("/:id", oneTimeHandler.DeleteOneTimeItem)

	// Portfolio routes
	portfolios := v1.Group("/portfolios")
	portfolios.POST("", portfolioHandler.CreatePortfolio)
	portfolios.GET("", portfolioHandler.GetPortfolios)
	portfolios.GET("/projection", portfolioHandler.ProjectPortfolios)
	portfolios.GET("/:id", portfolioHandler.GetPortfolio)
	portfolios.PUT("/:id", portfolioHandler.UpdatePortfolio)
	portfolios.DELETE("/:id", portfolioHandler.DeletePortfolio)
	portfolios.GET("/:id/projection", portfolioHandler.ProjectPortfolio)
	portfolios.POST("/:id/recalculate", portfolioHandler.RecalculatePortfolio)

	// Holdings routes
	holdings := v1.Group("/holdings")
	holdings.POST("", holdingHandler.CreateHolding)
	holdings.GET("", holdingHandler.GetHoldings)
	holdings.GET("/:id", holdingHandler.GetHolding)
	holdings.PUT("/:id", holdingHandler.UpdateHolding)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)

	// Wishlist routes
	wishlist := v1.Group("/wishlist")
	wishlist.POST("", wishlistHandler.CreateWishlistItem)
	wishlist.GET("", wishlistHandler.GetWishlistItems)
	wishlist.GET("/analysis", wishlistHandler.AnalyzeWishlist)
	wishlist.GET("/:id", wishlistHandler.GetWishlistItem)
	wishlist.PUT("/:id", wishlistHandler.UpdateWishlistItem)
	wishlist.DELETE("/:id", wishlistHandler.DeleteWishlistItem)
	wishlist.POST("/:id/toggle-purchased", wishlistHandler.TogglePurchased)

	// Wishlist category routes
	categories := v1.Group("/wishlist-categories")
	categories.GET("", categoryHandler.GetWishlistCategories)
	categories.POST("", categoryHandler.CreateWishlistCategory)
	categories.DELETE("/:id", categoryHandler.DeleteWishlistCategory)

	// Projection routes
	projections := v1.Group("/projections")
	projections.GET("", projectionHandler.GetForward)
	projections.GET("/history", projectionHandler.GetHistory)
	projections.GET("/details", projectionHandler.GetMonthDetails)

	// Settings routes
	v1.GET("/settings", settingHandler.GetSettings)
	v1.PUT("/settings", settingHandler.UpdateSettings)

	// Payday adjustment routes
	paydays := v1.Group("/paydays")
	paydays.GET("", paydayHandler.GetPaydayAdjustments)
	paydays.PUT("", paydayHandler.SetPaydayAdjustment)
	paydays.DELETE("/:id", paydayHandler.DeletePaydayAdjustment)

	// Snapshot routes
	v1.GET("/snapshots", snapshotHandler.GetSnapshots)

	// Pipeline routes (API key auth)
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(appConfig.PipelineAPIKey))
	pipeline.POST("/snapshots", snapshotHandler.RecordSnapshot)

	router.NoRoute(func(c *gin.Context) {
		err := apperrors.ErrNotFound
		c.JSON(err.StatusCode, gin.H{"error": gin.H{"code": err.Code, "message": err.Message}})
	})

	log.Infof("Starting Budgetcast server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// startSnapshotSchedule records a balance snapshot on the given cron spec.
func startSnapshotSchedule(spec string, snapshots services.SnapshotServicer) (*cron.Cron, error) {
	log := logger.Named("cron")

	scheduler := cron.New()
	_, err := scheduler.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		snapshot, err := snapshots.RecordSnapshot(ctx, time.Now().UTC().Truncate(time.Second))
		if err != nil {
			log.Errorw("Scheduled snapshot failed", "error", err)
			return
		}
		log.Infow("Recorded scheduled snapshot",
			"recorded_at", snapshot.RecordedAt,
			"total", snapshot.Total.StringFixed(2),
		)
	})
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	log.Infow("Snapshot schedule started", "spec", spec)
	return scheduler, nil
}
