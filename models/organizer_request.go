package models

import (
	"time"
)

type OrganizerRequestStatus string

const (
	OrganizerRequestPending  OrganizerRequestStatus = "pending"
	OrganizerRequestApproved OrganizerRequestStatus = "approved"
	OrganizerRequestRejected OrganizerRequestStatus = "rejected"
)

// ValidOrganizerRequestStatus reports whether the value is a known request status.
func ValidOrganizerRequestStatus(status OrganizerRequestStatus) bool {
	switch status {
	case OrganizerRequestPending, OrganizerRequestApproved, OrganizerRequestRejected:
		return true
	}
	return false
}

// OrganizerRequest is a user's application for the organizer role.
// Approving one also upgrades the user's role.
type OrganizerRequest struct {
	ID     string `json:"id" gorm:"primaryKey;size:191"`
	UserID string `json:"user_id" gorm:"not null;size:191;index"`

	Status OrganizerRequestStatus `json:"status" gorm:"not null;default:'pending';size:20;index"`

	// Who the applicant is and why they want the role
	Message string `json:"message" gorm:"type:text"`

	AdminComment *string `json:"admin_comment" gorm:"type:text"`

	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Resolved reports whether the request has already been decided.
func (r *OrganizerRequest) Resolved() bool {
	return r.Status != OrganizerRequestPending
}
