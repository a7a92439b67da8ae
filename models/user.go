package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleOrganizer UserRole = "organizer"
	RoleUser      UserRole = "user"
)

// ValidRole reports whether the value is one of the known roles.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleOrganizer, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID        string   `json:"id" gorm:"primaryKey;size:191"`
	Email     string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string   `json:"-" gorm:"not null;size:255"`
	FullName  *string  `json:"full_name" gorm:"size:255"`
	AvatarURL *string  `json:"avatar_url" gorm:"size:512"`
	Phone     *string  `json:"phone" gorm:"size:50"`
	Telegram  *string  `json:"telegram" gorm:"size:64"`
	About     *string  `json:"about" gorm:"type:text"`

	// Free-form event preferences, stored as JSON
	Preferences JSONMap `json:"preferences" gorm:"type:json"`

	Role      UserRole  `json:"role" gorm:"not null;default:'user';size:20;index"`
	IsBlocked bool      `json:"is_blocked" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Events []Event `json:"events,omitempty" gorm:"foreignKey:OrganizerID"`
}

// CanOrganize reports whether the user may create and manage events.
func (u *User) CanOrganize() bool {
	return u.Role == RoleOrganizer || u.Role == RoleAdmin
}
