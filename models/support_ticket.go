package models

import (
	"time"
)

type SupportTicketStatus string

const (
	TicketStatusOpen     SupportTicketStatus = "open"
	TicketStatusAnswered SupportTicketStatus = "answered"
	TicketStatusClosed   SupportTicketStatus = "closed"
)

// ValidTicketStatus reports whether the value is a known ticket status.
func ValidTicketStatus(status SupportTicketStatus) bool {
	switch status {
	case TicketStatusOpen, TicketStatusAnswered, TicketStatusClosed:
		return true
	}
	return false
}

// SupportTicket is a user inquiry handled by admins.
type SupportTicket struct {
	ID     string `json:"id" gorm:"primaryKey;size:191"`
	UserID string `json:"user_id" gorm:"not null;size:191;index"`

	Subject string `json:"subject" gorm:"not null;size:255"`
	Message string `json:"message" gorm:"not null;type:text"`

	Status SupportTicketStatus `json:"status" gorm:"not null;default:'open';size:20;index"`

	AdminReply *string `json:"admin_reply" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
