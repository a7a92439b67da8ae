package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse-afisha-api/middleware"
	"pulse-afisha-api/models"
)

type RSVPController struct {
	db *gorm.DB
}

func NewRSVPController(db *gorm.DB) *RSVPController {
	return &RSVPController{db: db}
}

type SetRSVPRequest struct {
	Status models.RSVPStatus `json:"status" binding:"required"`
}

// SetRSVP creates or updates the caller's RSVP on a published event.
// A (user, event) pair has exactly one row; status changes mutate it in place.
func (rc *RSVPController) SetRSVP(c *gin.Context) {
	var req SetRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRSVPStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown RSVP status"})
		return
	}

	eventID := c.Param("id")
	var event models.Event
	err := rc.db.Where("id = ? AND status = ?", eventID, models.EventStatusPublished).
		First(&event).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found or not published"})
		return
	}

	user := middleware.CurrentUser(c)

	var rsvp models.EventRSVP
	err = rc.db.Where("user_id = ? AND event_id = ?", user.ID, eventID).First(&rsvp).Error
	if err != nil {
		rsvp = models.EventRSVP{
			ID:      uuid.New().String(),
			UserID:  user.ID,
			EventID: eventID,
			Status:  req.Status,
		}
		if err := rc.db.Create(&rsvp).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save RSVP"})
			return
		}
	} else {
		rsvp.Status = req.Status
		if err := rc.db.Save(&rsvp).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save RSVP"})
			return
		}
	}

	c.JSON(http.StatusOK, rsvp)
}

// GetMyRSVP returns the caller's RSVP on an event, or null if there is none.
func (rc *RSVPController) GetMyRSVP(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var rsvp models.EventRSVP
	err := rc.db.Where("user_id = ? AND event_id = ?", user.ID, c.Param("id")).First(&rsvp).Error
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, rsvp)
}

// GetRSVPStats returns the per-status response counts for an event. Public.
func (rc *RSVPController) GetRSVPStats(c *gin.Context) {
	eventID := c.Param("id")

	var rows []struct {
		Status models.RSVPStatus
		Count  int64
	}
	err := rc.db.Model(&models.EventRSVP{}).
		Select("status, count(*) as count").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch RSVP stats"})
		return
	}

	var stats models.RSVPStats
	for _, row := range rows {
		switch row.Status {
		case models.RSVPStatusGoing:
			stats.Going = row.Count
		case models.RSVPStatusInterested:
			stats.Interested = row.Count
		case models.RSVPStatusCanceled:
			stats.Canceled = row.Count
		}
	}

	c.JSON(http.StatusOK, stats)
}

// ListEventRSVPs returns all RSVPs on an event. Organizers are limited to
// their own events; admins may inspect any event.
func (rc *RSVPController) ListEventRSVPs(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	if err := rc.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	user := middleware.CurrentUser(c)
	if user.Role != models.RoleAdmin && !event.OwnedBy(user.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only view RSVPs on your own events"})
		return
	}

	var rsvps []models.EventRSVP
	if err := rc.db.Where("event_id = ?", eventID).Order("created_at DESC").Find(&rsvps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch RSVPs"})
		return
	}

	c.JSON(http.StatusOK, rsvps)
}

// GetMyRSVPs lists the caller's RSVPs with their events, newest first.
func (rc *RSVPController) GetMyRSVPs(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var rsvps []models.EventRSVP
	err := rc.db.Preload("Event").Preload("Event.Category").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&rsvps).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch RSVPs"})
		return
	}

	c.JSON(http.StatusOK, rsvps)
}
