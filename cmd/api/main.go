package main

import (
	"fmt"
	"monetra/internal/config"
	"monetra/internal/database"
	"monetra/internal/handlers"
	"monetra/internal/logger"
	"monetra/internal/middleware"
	"monetra/internal/services"
	"monetra/internal/validator"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// @title           Monetra API
// @version         1.0
// @description     Monetra is a personal finance tracker with multi-currency transactions, monthly aggregation, and budget pacing.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	sourceService := services.NewSourceService(db)
	projectService := services.NewProjectService(db)
	transactionService := services.NewTransactionService(db)
	settingsService := services.NewSettingsService(db)
	analyticsService := services.NewAnalyticsService(db, settingsService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	sourceHandler := handlers.NewSourceHandler(sourceService)
	projectHandler := handlers.NewProjectHandler(projectService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	summaryHandler := handlers.NewSummaryHandler(analyticsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Maintenance routes, guarded by API key instead of user auth
	v1.POST("/categories/cleanup",
		middleware.MaintenanceAuth(appConfig.MaintenanceKey),
		categoryHandler.CleanupOrphans)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Income source routes
	sources := protected.Group("/sources")
	sources.POST("", sourceHandler.CreateSource)
	sources.GET("", sourceHandler.GetSources)
	sources.GET("/:id", sourceHandler.GetSource)
	sources.PUT("/:id", sourceHandler.UpdateSource)
	sources.DELETE("/:id", sourceHandler.DeleteSource)

	// Project routes
	projects := protected.Group("/projects")
	projects.POST("", projectHandler.CreateProject)
	projects.GET("", projectHandler.GetProjects)
	projects.GET("/:id", projectHandler.GetProject)
	projects.PUT("/:id", projectHandler.UpdateProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Settings routes
	protected.GET("/settings", settingsHandler.GetSettings)
	protected.PUT("/settings", settingsHandler.UpdateSettings)

	// Summary routes
	summary := protected.Group("/summary")
	summary.GET("/month", summaryHandler.GetMonthSummary)
	summary.GET("/budget", summaryHandler.GetBudgetStatus)
	summary.GET("/dashboard", summaryHandler.GetDashboard)
	summary.GET("/series", summaryHandler.GetSeries)

	log.Infof("Starting Monetra backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
