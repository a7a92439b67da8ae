package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetRSVPRejectsUnknownStatus(t *testing.T) {
	rc := NewRSVPController(nil)
	r := gin.New()
	r.POST("/events/:id/rsvp", rc.SetRSVP)

	w := postJSON(r, "/events/event-1/rsvp", `{"status":"maybe"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown RSVP status")
}

func TestSetRSVPRejectsMissingStatus(t *testing.T) {
	rc := NewRSVPController(nil)
	r := gin.New()
	r.POST("/events/:id/rsvp", rc.SetRSVP)

	w := postJSON(r, "/events/event-1/rsvp", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTicketRejectsShortMessage(t *testing.T) {
	tc := NewSupportTicketController(nil)
	r := gin.New()
	r.POST("/support-tickets", tc.CreateTicket)

	w := postJSON(r, "/support-tickets", `{"subject":"Refund","message":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTicketRejectsMissingSubject(t *testing.T) {
	tc := NewSupportTicketController(nil)
	r := gin.New()
	r.POST("/support-tickets", tc.CreateTicket)

	w := postJSON(r, "/support-tickets", `{"message":"My payment did not go through"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
