package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventStatusTransitions(t *testing.T) {
	cases := []struct {
		status      EventStatus
		canSubmit   bool
		editable    bool
		deletable   bool
		archiveable bool
		publishable bool
		rejectable  bool
	}{
		{EventStatusDraft, true, true, true, false, true, false},
		{EventStatusPendingModeration, false, false, false, false, true, true},
		{EventStatusPublished, false, false, false, true, false, false},
		{EventStatusRejected, true, true, true, false, true, false},
		{EventStatusArchived, false, false, true, false, true, false},
	}

	for _, tc := range cases {
		event := Event{Status: tc.status}
		assert.Equal(t, tc.canSubmit, event.CanSubmit(), "CanSubmit for %s", tc.status)
		assert.Equal(t, tc.editable, event.EditableByOrganizer(), "EditableByOrganizer for %s", tc.status)
		assert.Equal(t, tc.deletable, event.DeletableByOrganizer(), "DeletableByOrganizer for %s", tc.status)
		assert.Equal(t, tc.archiveable, event.CanArchive(), "CanArchive for %s", tc.status)
		assert.Equal(t, tc.publishable, event.CanPublish(), "CanPublish for %s", tc.status)
		assert.Equal(t, tc.rejectable, event.CanReject(), "CanReject for %s", tc.status)
	}
}

func TestValidEventStatus(t *testing.T) {
	assert.True(t, ValidEventStatus(EventStatusDraft))
	assert.True(t, ValidEventStatus(EventStatusPendingModeration))
	assert.True(t, ValidEventStatus(EventStatusPublished))
	assert.True(t, ValidEventStatus(EventStatusRejected))
	assert.True(t, ValidEventStatus(EventStatusArchived))
	assert.False(t, ValidEventStatus("deleted"))
	assert.False(t, ValidEventStatus(""))
}

func TestEventOwnedBy(t *testing.T) {
	event := Event{OrganizerID: "organizer-1"}
	assert.True(t, event.OwnedBy("organizer-1"))
	assert.False(t, event.OwnedBy("someone-else"))
}

func TestValidRSVPStatus(t *testing.T) {
	assert.True(t, ValidRSVPStatus(RSVPStatusGoing))
	assert.True(t, ValidRSVPStatus(RSVPStatusInterested))
	assert.True(t, ValidRSVPStatus(RSVPStatusCanceled))
	assert.False(t, ValidRSVPStatus("maybe"))
}

func TestUserCanOrganize(t *testing.T) {
	assert.True(t, (&User{Role: RoleOrganizer}).CanOrganize())
	assert.True(t, (&User{Role: RoleAdmin}).CanOrganize())
	assert.False(t, (&User{Role: RoleUser}).CanOrganize())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleUser))
	assert.True(t, ValidRole(RoleOrganizer))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("superuser"))
}
