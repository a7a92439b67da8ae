package models

import (
	"time"
)

// EventCategory is the lookup table events are grouped by (concerts, exhibitions, etc.)
type EventCategory struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	Description *string   `json:"description" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Events []Event `json:"-" gorm:"foreignKey:CategoryID"`
}
