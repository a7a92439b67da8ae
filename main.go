package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"pulse-afisha-api/config"
	"pulse-afisha-api/database"
	"pulse-afisha-api/jobs"
	"pulse-afisha-api/middleware"
	"pulse-afisha-api/repositories"
	"pulse-afisha-api/routes"
	"pulse-afisha-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed first admin account and default categories
	if err := database.SeedData(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Password reset codes live in Redis when configured, in memory otherwise
	var codeStore repositories.ResetCodeStore
	if cfg.RedisAddr != "" {
		redisStore, err := repositories.NewRedisResetCodeStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer redisStore.Close()
		codeStore = redisStore
		log.Printf("Using Redis reset code store at %s", cfg.RedisAddr)
	} else {
		memoryStore := repositories.NewMemoryResetCodeStore()
		cleanupJob := jobs.NewResetCodeCleanupJob(memoryStore, 10*time.Minute)
		cleanupJob.Start()
		defer cleanupJob.Stop()
		codeStore = memoryStore
	}

	emailService := services.NewEmailService(cfg, codeStore)

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Create router
	router := gin.New()

	// Setup CORS middleware
	router.Use(routes.SetupCORS(cfg.AllowedOrigins))

	// Security headers middleware
	router.Use(middleware.SecurityHeaders())

	// Content type validation middleware
	router.Use(middleware.ValidateJSON())

	// Request logging middleware
	router.Use(middleware.RequestLogger())

	// Recovery middleware
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Start server
	log.Printf("Starting Pulse Afisha API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/health", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
