package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studious-dev/studious-api/internal/dto"
	apierrors "github.com/studious-dev/studious-api/internal/errors"
	"github.com/studious-dev/studious-api/internal/middleware"
	"github.com/studious-dev/studious-api/internal/services"
)

// EventHandler coordinates calendar event CRUD handlers.
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// CreateEvent creates an event, optionally linked to one of the caller's
// courses and/or tasks.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateEventRequest struct {
		Title    string     `json:"title"`
		Start    *time.Time `json:"start"`
		End      *time.Time `json:"end"`
		Notes    string     `json:"notes"`
		CourseID *uint64    `json:"course"`
		TaskID   *uint64    `json:"task"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Title == "" || req.Start == nil {
		apierrors.BadRequest(c, "Title and start time are required")
		return
	}

	event, err := h.eventService.Create(userID, services.CreateEventInput{
		Title:    req.Title,
		Start:    *req.Start,
		End:      req.End,
		Notes:    req.Notes,
		CourseID: req.CourseID,
		TaskID:   req.TaskID,
	})
	if err != nil {
		respondEntityError(c, err, "Event")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventDTO(*event))
}

// ListEvents returns the caller's events in chronological order, with
// linked course and task titles, optionally filtered by course.
func (h *EventHandler) ListEvents(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var courseID *uint64
	if raw := c.Query("course_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid course_id")
			return
		}
		courseID = &id
	}

	events, err := h.eventService.List(userID, courseID)
	if err != nil {
		respondEntityError(c, err, "Event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTOs(events))
}

// GetEvent returns a single event with denormalized course/task summaries.
func (h *EventHandler) GetEvent(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.Get(userID, eventID)
	if err != nil {
		respondEntityError(c, err, "Event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*event))
}

// UpdateEvent applies a partial update; omitted fields are left unchanged
// and any newly supplied link is re-verified.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateEventRequest struct {
		Title    *string    `json:"title"`
		Start    *time.Time `json:"start"`
		End      *time.Time `json:"end"`
		Notes    *string    `json:"notes"`
		CourseID *uint64    `json:"course"`
		TaskID   *uint64    `json:"task"`
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.Update(userID, eventID, services.UpdateEventInput{
		Title:    req.Title,
		Start:    req.Start,
		End:      req.End,
		Notes:    req.Notes,
		CourseID: req.CourseID,
		TaskID:   req.TaskID,
	})
	if err != nil {
		respondEntityError(c, err, "Event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDTO(*event))
}

// DeleteEvent removes an event.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(userID, eventID); err != nil {
		respondEntityError(c, err, "Event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event removed"})
}
