package database

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulse-afisha-api/models"
)

// Initialize opens the database connection. The driver is selected by
// configuration so the same binary can run against postgres or mysql.
func Initialize(driver, databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver {
	case "mysql":
		dialector = mysql.Open(databaseURL)
	case "postgres", "":
		dialector = postgres.Open(databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.EventCategory{},
		&models.Event{},
		&models.EventRSVP{},
		&models.FavoriteEvent{},
		&models.OrganizerRequest{},
		&models.SupportTicket{},
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
	// Composite indexes for the hot list queries

	// Published feed ordered by start time
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_status_starts_at ON events(status, starts_at)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for events feed: %v\n", err)
	}

	// Organizer dashboard
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_organizer_created ON events(organizer_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for organizer events: %v\n", err)
	}

	// Per-event RSVP stats
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_event_rsvps_event_status ON event_rsvps(event_id, status)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for rsvp stats: %v\n", err)
	}

	// Favorites list ordered by when the user favorited
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_favorite_events_user_created ON favorite_events(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for favorites list: %v\n", err)
	}

	return nil
}

// SeedData creates the first admin account and the default categories.
// It is a no-op for anything that already exists.
func SeedData(db *gorm.DB, adminEmail, adminPassword string) error {
	if err := seedFirstAdmin(db, adminEmail, adminPassword); err != nil {
		return err
	}
	return seedCategories(db)
}

func seedFirstAdmin(db *gorm.DB, email, password string) error {
	if password == "" {
		fmt.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create first admin: %w", err)
	}

	fmt.Printf("Seeded first admin account: %s\n", email)
	return nil
}

func seedCategories(db *gorm.DB) error {
	var count int64
	db.Model(&models.EventCategory{}).Count(&count)
	if count > 0 {
		return nil
	}

	defaults := []models.EventCategory{
		{ID: uuid.New().String(), Name: "Concerts", Slug: "concerts"},
		{ID: uuid.New().String(), Name: "Exhibitions", Slug: "exhibitions"},
		{ID: uuid.New().String(), Name: "Theatre", Slug: "theatre"},
		{ID: uuid.New().String(), Name: "Lectures", Slug: "lectures"},
		{ID: uuid.New().String(), Name: "Festivals", Slug: "festivals"},
	}

	for _, category := range defaults {
		if err := db.Create(&category).Error; err != nil {
			fmt.Printf("Warning: Could not create category %s: %v\n", category.Slug, err)
		}
	}

	return nil
}
