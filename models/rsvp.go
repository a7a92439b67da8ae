package models

import (
	"time"
)

type RSVPStatus string

const (
	RSVPStatusGoing      RSVPStatus = "going"
	RSVPStatusInterested RSVPStatus = "interested"
	RSVPStatusCanceled   RSVPStatus = "canceled"
)

// ValidRSVPStatus reports whether the value is a known RSVP status.
func ValidRSVPStatus(status RSVPStatus) bool {
	switch status {
	case RSVPStatusGoing, RSVPStatusInterested, RSVPStatusCanceled:
		return true
	}
	return false
}

// EventRSVP is a user's stated attendance intent for an event.
// One row per (user, event) pair, mutated in place on status changes.
type EventRSVP struct {
	ID      string `json:"id" gorm:"primaryKey;size:191"`
	UserID  string `json:"user_id" gorm:"not null;size:191;uniqueIndex:uq_event_rsvp_user_event"`
	EventID string `json:"event_id" gorm:"not null;size:191;uniqueIndex:uq_event_rsvp_user_event"`

	Status RSVPStatus `json:"status" gorm:"not null;default:'interested';size:20;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Event Event `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// RSVPStats is the per-status breakdown of responses on an event.
type RSVPStats struct {
	Going      int64 `json:"going"`
	Interested int64 `json:"interested"`
	Canceled   int64 `json:"canceled"`
}

// FavoriteEvent is the join table behind a user's favorites list.
type FavoriteEvent struct {
	ID      string `json:"id" gorm:"primaryKey;size:191"`
	UserID  string `json:"user_id" gorm:"not null;size:191;uniqueIndex:uq_favorite_user_event"`
	EventID string `json:"event_id" gorm:"not null;size:191;uniqueIndex:uq_favorite_user_event"`

	CreatedAt time.Time `json:"created_at"`

	User  User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Event Event `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}
