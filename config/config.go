package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	// Database
	DBDriver    string // "postgres" or "mysql"
	DatabaseURL string

	// Auth
	JWTSecret          string
	TokenExpiryMinutes int

	// Redis (optional, used for password reset codes when set)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CORS
	AllowedOrigins string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// First admin account, created on seed if missing
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	tokenExpiry, _ := strconv.Atoi(getEnv("TOKEN_EXPIRY_MINUTES", "60"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DBDriver: getEnv("DB_DRIVER", "postgres"),
		DatabaseURL: getEnv("DATABASE_URL",
			"host=localhost user=afisha password=afisha dbname=afisha port=5432 sslmode=disable TimeZone=UTC"),

		JWTSecret:          getEnv("JWT_SECRET", "change-me-in-prod"),
		TokenExpiryMinutes: tokenExpiry,

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@pulse-afisha.com"),
		FromName:     getEnv("FROM_NAME", "Pulse Afisha"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@pulse-afisha.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
