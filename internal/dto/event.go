package dto

import (
	"time"

	"github.com/studious-dev/studious-api/internal/models"
)

// CourseRef is the denormalized course summary embedded in event responses.
type CourseRef struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// TaskRef is the denormalized task summary embedded in event responses.
type TaskRef struct {
	ID      uint64 `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details,omitempty"`
}

// EventDTO represents a calendar event in API responses. End is null when
// the event has no end time.
type EventDTO struct {
	ID        uint64     `json:"id"`
	Title     string     `json:"title"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end"`
	Notes     string     `json:"notes"`
	CourseID  *uint64    `json:"course_id"`
	TaskID    *uint64    `json:"task_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Course    *CourseRef `json:"course,omitempty"`
	Task      *TaskRef   `json:"task,omitempty"`
}

// ToEventDTO converts an Event model to EventDTO, carrying the linked
// course and task titles when preloaded.
func ToEventDTO(event models.Event) EventDTO {
	dto := EventDTO{
		ID:        event.ID,
		Title:     event.Title,
		Start:     event.Start,
		End:       event.End,
		Notes:     event.Notes,
		CourseID:  event.CourseID,
		TaskID:    event.TaskID,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}

	if event.Course != nil {
		dto.Course = &CourseRef{
			ID:          event.Course.ID,
			Title:       event.Course.Title,
			Description: event.Course.Description,
		}
	}

	if event.Task != nil {
		dto.Task = &TaskRef{
			ID:      event.Task.ID,
			Title:   event.Task.Title,
			Details: event.Task.Details,
		}
	}

	return dto
}

// ToEventDTOs converts a slice of events.
func ToEventDTOs(events []models.Event) []EventDTO {
	dtos := make([]EventDTO, len(events))
	for i, event := range events {
		dtos[i] = ToEventDTO(event)
	}
	return dtos
}
