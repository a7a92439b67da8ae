package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse-afisha-api/middleware"
	"pulse-afisha-api/models"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

// GetFavorites lists the caller's favorited events that are still published,
// most recently favorited first.
func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var events []models.Event
	err := fc.db.
		Joins("JOIN favorite_events ON favorite_events.event_id = events.id").
		Preload("Category").
		Where("favorite_events.user_id = ? AND events.status = ?", user.ID, models.EventStatusPublished).
		Order("favorite_events.created_at DESC").
		Find(&events).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// IsFavorite reports whether the event is in the caller's favorites.
func (fc *FavoriteController) IsFavorite(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var favorite models.FavoriteEvent
	err := fc.db.Where("user_id = ? AND event_id = ?", user.ID, c.Param("id")).First(&favorite).Error

	c.JSON(http.StatusOK, gin.H{"is_favorite": err == nil})
}

// AddFavorite puts a published event into the caller's favorites. Adding the
// same event twice is a no-op.
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	err := fc.db.Where("id = ? AND status = ?", eventID, models.EventStatusPublished).
		First(&event).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found or not published"})
		return
	}

	user := middleware.CurrentUser(c)

	var existing models.FavoriteEvent
	if err := fc.db.Where("user_id = ? AND event_id = ?", user.ID, eventID).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"is_favorite": true})
		return
	}

	favorite := models.FavoriteEvent{
		ID:      uuid.New().String(),
		UserID:  user.ID,
		EventID: eventID,
	}
	if err := fc.db.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"is_favorite": true})
}

// RemoveFavorite drops the event from the caller's favorites. Removing an
// event that is not favorited is a no-op.
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	user := middleware.CurrentUser(c)

	err := fc.db.Where("user_id = ? AND event_id = ?", user.ID, c.Param("id")).
		Delete(&models.FavoriteEvent{}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": false})
}
