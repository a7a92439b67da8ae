package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse-afisha-api/middleware"
	"pulse-afisha-api/models"
	"pulse-afisha-api/utils"
)

type EventController struct {
	db *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{db: db}
}

type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required,min=3,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=5000"`
	CategoryID  string     `json:"category_id" binding:"required"`
	StartsAt    time.Time  `json:"starts_at" binding:"required"`
	EndsAt      *time.Time `json:"ends_at"`
	AddressText *string    `json:"address_text" binding:"omitempty,max=255"`
	Latitude    *float64   `json:"latitude" binding:"required"`
	Longitude   *float64   `json:"longitude" binding:"required"`
	IsFree      *bool      `json:"is_free"`
	PriceFrom   *int       `json:"price_from" binding:"omitempty,min=0"`
	Capacity    *int       `json:"capacity" binding:"omitempty,min=1"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=3,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=5000"`
	CategoryID  *string    `json:"category_id"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	AddressText *string    `json:"address_text" binding:"omitempty,max=255"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	IsFree      *bool      `json:"is_free"`
	PriceFrom   *int       `json:"price_from" binding:"omitempty,min=0"`
	Capacity    *int       `json:"capacity" binding:"omitempty,min=1"`
}

type ModerationActionRequest struct {
	ModerationComment *string `json:"moderation_comment" binding:"omitempty,max=2000"`
}

// GetEvents is the public feed: published events only, with category, date
// range, text and bounding box filters.
func (ec *EventController) GetEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := ec.db.Model(&models.Event{}).
		Preload("Category").
		Where("status = ?", models.EventStatusPublished)

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	if dateFrom := c.Query("date_from"); dateFrom != "" {
		from, err := time.Parse(time.RFC3339, dateFrom)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_from must be RFC3339"})
			return
		}
		query = query.Where("starts_at >= ?", from)
	}

	if dateTo := c.Query("date_to"); dateTo != "" {
		to, err := time.Parse(time.RFC3339, dateTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_to must be RFC3339"})
			return
		}
		query = query.Where("starts_at <= ?", to)
	}

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	// Map viewport: all four bounds must be present to apply the box
	latMin, errA := strconv.ParseFloat(c.Query("lat_min"), 64)
	latMax, errB := strconv.ParseFloat(c.Query("lat_max"), 64)
	lngMin, errC := strconv.ParseFloat(c.Query("lng_min"), 64)
	lngMax, errD := strconv.ParseFloat(c.Query("lng_max"), 64)
	if errA == nil && errB == nil && errC == nil && errD == nil {
		query = query.Where("latitude >= ? AND latitude <= ? AND longitude >= ? AND longitude <= ?",
			latMin, latMax, lngMin, lngMax)
	}

	var total int64
	query.Count(&total)

	var events []models.Event
	if err := query.Order("starts_at ASC").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	utils.SendPaginated(c, events, page, limit, total)
}

// GetEvent returns a single published event for public viewing.
func (ec *EventController) GetEvent(c *gin.Context) {
	var event models.Event
	err := ec.db.Preload("Category").
		Where("id = ? AND status = ?", c.Param("id"), models.EventStatusPublished).
		First(&event).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// GetMyEvents lists the caller's own events. Archived events are hidden
// unless an explicit status filter is given.
func (ec *EventController) GetMyEvents(c *gin.Context) {
	user := middleware.CurrentUser(c)

	query := ec.db.Preload("Category").Where("organizer_id = ?", user.ID)

	if status := c.Query("status"); status != "" {
		if !models.ValidEventStatus(models.EventStatus(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
			return
		}
		query = query.Where("status = ?", status)
	} else {
		query = query.Where("status <> ?", models.EventStatusArchived)
	}

	var events []models.Event
	if err := query.Order("created_at DESC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEventForManage returns an event in any status for its organizer or an admin.
func (ec *EventController) GetEventForManage(c *gin.Context) {
	event, ok := ec.loadOwnedEvent(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, event)
}

// CreateEvent creates a draft. Publication goes through moderation.
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidLatitude(*req.Latitude) || !utils.IsValidLongitude(*req.Longitude) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coordinates are out of range"})
		return
	}

	if req.EndsAt != nil && req.EndsAt.Before(req.StartsAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event cannot end before it starts"})
		return
	}

	var category models.EventCategory
	if err := ec.db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
		return
	}

	user := middleware.CurrentUser(c)

	isFree := true
	if req.IsFree != nil {
		isFree = *req.IsFree
	}
	priceFrom := req.PriceFrom
	if isFree {
		priceFrom = nil
	}

	event := models.Event{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  category.ID,
		OrganizerID: user.ID,
		Status:      models.EventStatusDraft,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		AddressText: req.AddressText,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		IsFree:      isFree,
		PriceFrom:   priceFrom,
		Capacity:    req.Capacity,
	}

	if err := ec.db.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	event.Category = category
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent applies a partial update. Organizers may only edit drafts and
// rejected events; admins may edit anything.
func (ec *EventController) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, ok := ec.loadOwnedEvent(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	if user.Role != models.RoleAdmin && !event.EditableByOrganizer() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only drafts and rejected events can be edited"})
		return
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.CategoryID != nil {
		var category models.EventCategory
		if err := ec.db.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}
		event.CategoryID = category.ID
		event.Category = category
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt
	}
	if event.EndsAt != nil && event.EndsAt.Before(event.StartsAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event cannot end before it starts"})
		return
	}
	if req.AddressText != nil {
		event.AddressText = req.AddressText
	}
	if req.Latitude != nil {
		if !utils.IsValidLatitude(*req.Latitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude is out of range"})
			return
		}
		event.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		if !utils.IsValidLongitude(*req.Longitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Longitude is out of range"})
			return
		}
		event.Longitude = *req.Longitude
	}
	if req.IsFree != nil {
		event.IsFree = *req.IsFree
		if event.IsFree {
			event.PriceFrom = nil
		}
	}
	if req.PriceFrom != nil && !event.IsFree {
		event.PriceFrom = req.PriceFrom
	}
	if req.Capacity != nil {
		event.Capacity = req.Capacity
	}

	if err := ec.db.Save(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event. Organizers may only delete drafts, rejected
// and archived events; admins may delete any event.
func (ec *EventController) DeleteEvent(c *gin.Context) {
	event, ok := ec.loadOwnedEvent(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	if user.Role != models.RoleAdmin && !event.DeletableByOrganizer() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only drafts, rejected and archived events can be deleted"})
		return
	}

	if err := ec.db.Delete(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// SubmitEvent sends a draft or rejected event to moderation and clears the
// previous moderator comment.
func (ec *EventController) SubmitEvent(c *gin.Context) {
	event, ok := ec.loadOwnedEvent(c)
	if !ok {
		return
	}

	if !event.CanSubmit() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only drafts and rejected events can be submitted for moderation"})
		return
	}

	event.Status = models.EventStatusPendingModeration
	event.ModerationComment = nil

	if err := ec.db.Save(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// ArchiveEvent moves a published event to the archive.
func (ec *EventController) ArchiveEvent(c *gin.Context) {
	event, ok := ec.loadOwnedEvent(c)
	if !ok {
		return
	}

	if !event.CanArchive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only published events can be archived"})
		return
	}

	event.Status = models.EventStatusArchived

	if err := ec.db.Save(event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// GetModerationQueue lists events for the admin, pending moderation by default.
func (ec *EventController) GetModerationQueue(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	status := c.DefaultQuery("status", string(models.EventStatusPendingModeration))
	if !models.ValidEventStatus(models.EventStatus(status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
		return
	}

	query := ec.db.Model(&models.Event{}).Preload("Category").Where("status = ?", status)

	var total int64
	query.Count(&total)

	var events []models.Event
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	utils.SendPaginated(c, events, page, limit, total)
}

// PublishEvent makes an event publicly visible. Usually from moderation, but
// an admin can also publish a draft directly.
func (ec *EventController) PublishEvent(c *gin.Context) {
	var req ModerationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var event models.Event
	if err := ec.db.Preload("Category").First(&event, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if !event.CanPublish() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event is already published"})
		return
	}

	event.Status = models.EventStatusPublished
	event.ModerationComment = req.ModerationComment

	if err := ec.db.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// RejectEvent declines an event on moderation with a moderator comment.
func (ec *EventController) RejectEvent(c *gin.Context) {
	var req ModerationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var event models.Event
	if err := ec.db.Preload("Category").First(&event, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if !event.CanReject() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only events pending moderation can be rejected"})
		return
	}

	comment := "Event rejected by moderator"
	if req.ModerationComment != nil && *req.ModerationComment != "" {
		comment = *req.ModerationComment
	}

	event.Status = models.EventStatusRejected
	event.ModerationComment = &comment

	if err := ec.db.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// loadOwnedEvent fetches the event and enforces the owner-or-admin rule,
// writing the error response itself when the check fails.
func (ec *EventController) loadOwnedEvent(c *gin.Context) (*models.Event, bool) {
	var event models.Event
	if err := ec.db.Preload("Category").First(&event, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return nil, false
	}

	user := middleware.CurrentUser(c)
	if user.Role != models.RoleAdmin && !event.OwnedBy(user.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only manage your own events"})
		return nil, false
	}

	return &event, true
}
