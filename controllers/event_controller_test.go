package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func eventRouter() *gin.Engine {
	ec := NewEventController(nil)
	r := gin.New()
	r.POST("/events", ec.CreateEvent)
	r.PUT("/events/:id", ec.UpdateEvent)
	return r
}

func TestCreateEventRejectsMissingTitle(t *testing.T) {
	r := eventRouter()

	w := postJSON(r, "/events", `{
		"category_id": "cat-1",
		"starts_at": "2026-09-01T19:00:00Z",
		"latitude": 55.75,
		"longitude": 37.61
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEventRejectsMissingCoordinates(t *testing.T) {
	r := eventRouter()

	w := postJSON(r, "/events", `{
		"title": "Open air concert",
		"category_id": "cat-1",
		"starts_at": "2026-09-01T19:00:00Z"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEventRejectsCoordinatesOutOfRange(t *testing.T) {
	r := eventRouter()

	w := postJSON(r, "/events", `{
		"title": "Open air concert",
		"category_id": "cat-1",
		"starts_at": "2026-09-01T19:00:00Z",
		"latitude": 95.0,
		"longitude": 37.61
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "out of range")
}

func TestCreateEventRejectsEndBeforeStart(t *testing.T) {
	r := eventRouter()

	w := postJSON(r, "/events", `{
		"title": "Open air concert",
		"category_id": "cat-1",
		"starts_at": "2026-09-01T19:00:00Z",
		"ends_at": "2026-09-01T18:00:00Z",
		"latitude": 55.75,
		"longitude": 37.61
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot end before it starts")
}

func TestUpdateEventRejectsShortTitle(t *testing.T) {
	r := eventRouter()

	req := httptest.NewRequest(http.MethodPut, "/events/event-1", strings.NewReader(`{"title":"ab"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEventRejectsNegativePrice(t *testing.T) {
	r := eventRouter()

	w := postJSON(r, "/events", `{
		"title": "Open air concert",
		"category_id": "cat-1",
		"starts_at": "2026-09-01T19:00:00Z",
		"latitude": 55.75,
		"longitude": 37.61,
		"is_free": false,
		"price_from": -100
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
