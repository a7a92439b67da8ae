package models

import (
	"time"
)

type EventStatus string

const (
	EventStatusDraft             EventStatus = "draft"
	EventStatusPendingModeration EventStatus = "pending_moderation"
	EventStatusPublished         EventStatus = "published"
	EventStatusRejected          EventStatus = "rejected"
	EventStatusArchived          EventStatus = "archived"
)

// ValidEventStatus reports whether the value is a known status.
func ValidEventStatus(status EventStatus) bool {
	switch status {
	case EventStatusDraft, EventStatusPendingModeration, EventStatusPublished,
		EventStatusRejected, EventStatusArchived:
		return true
	}
	return false
}

// Event is the central content entity, shown in the feed and on the map.
// Visibility is gated by the moderation status: only published events are public.
type Event struct {
	ID          string  `json:"id" gorm:"primaryKey;size:191"`
	Title       string  `json:"title" gorm:"not null;size:255"`
	Description *string `json:"description" gorm:"type:text"`

	CategoryID string        `json:"category_id" gorm:"not null;size:191;index"`
	Category   EventCategory `json:"category" gorm:"foreignKey:CategoryID"`

	OrganizerID string `json:"organizer_id" gorm:"not null;size:191;index"`
	Organizer   User   `json:"-" gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE"`

	Status EventStatus `json:"status" gorm:"not null;default:'draft';size:30;index"`

	StartsAt time.Time  `json:"starts_at" gorm:"not null;index"`
	EndsAt   *time.Time `json:"ends_at"`

	AddressText *string `json:"address_text" gorm:"size:255"`
	Latitude    float64 `json:"latitude" gorm:"not null"`
	Longitude   float64 `json:"longitude" gorm:"not null"`

	IsFree    bool `json:"is_free" gorm:"default:true"`
	PriceFrom *int `json:"price_from"`
	Capacity  *int `json:"capacity"`

	ModerationComment *string `json:"moderation_comment" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanSubmit reports whether the event may be sent to moderation.
func (e *Event) CanSubmit() bool {
	return e.Status == EventStatusDraft || e.Status == EventStatusRejected
}

// EditableByOrganizer reports whether the owning organizer may still edit the event.
// Admins are not bound by this check.
func (e *Event) EditableByOrganizer() bool {
	return e.Status == EventStatusDraft || e.Status == EventStatusRejected
}

// DeletableByOrganizer reports whether the owning organizer may delete the event.
// Published and pending events must go through moderation or archiving first.
func (e *Event) DeletableByOrganizer() bool {
	switch e.Status {
	case EventStatusDraft, EventStatusRejected, EventStatusArchived:
		return true
	}
	return false
}

// CanArchive reports whether the event may be moved to the archive.
func (e *Event) CanArchive() bool {
	return e.Status == EventStatusPublished
}

// CanPublish reports whether an admin may publish the event. Publishing is
// allowed from any status except published itself.
func (e *Event) CanPublish() bool {
	return e.Status != EventStatusPublished
}

// CanReject reports whether an admin may reject the event. Only events
// waiting on moderation can be rejected.
func (e *Event) CanReject() bool {
	return e.Status == EventStatusPendingModeration
}

// OwnedBy reports whether the given user is the organizer of the event.
func (e *Event) OwnedBy(userID string) bool {
	return e.OrganizerID == userID
}
