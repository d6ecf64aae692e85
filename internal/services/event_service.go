package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/studious-dev/studious-api/internal/models"
	"github.com/studious-dev/studious-api/internal/repository"
	"gorm.io/gorm"
)

var ErrInvalidTask = errors.New("invalid task")

// EventService handles calendar event business logic, including the
// write-time link checks against courses and tasks.
type EventService struct {
	eventRepo  repository.EventRepository
	courseRepo repository.CourseRepository
	taskRepo   repository.TaskRepository
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repository.EventRepository, courseRepo repository.CourseRepository, taskRepo repository.TaskRepository) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		courseRepo: courseRepo,
		taskRepo:   taskRepo,
	}
}

// checkLinks verifies that any supplied course or task reference belongs to
// the caller. Links are only checked at write time; deleting the target
// later leaves the reference dangling.
func (s *EventService) checkLinks(userID uint64, courseID, taskID *uint64) error {
	if courseID != nil {
		course, err := s.courseRepo.FindByID(*courseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidCourse
			}
			return fmt.Errorf("failed to check course: %w", err)
		}
		if course.OwnerID() != userID {
			return ErrInvalidCourse
		}
	}

	if taskID != nil {
		task, err := s.taskRepo.FindByID(*taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidTask
			}
			return fmt.Errorf("failed to check task: %w", err)
		}
		if task.OwnerID() != userID {
			return ErrInvalidTask
		}
	}

	return nil
}

// CreateEventInput holds the fields for a new event.
type CreateEventInput struct {
	Title    string
	Start    time.Time
	End      *time.Time
	Notes    string
	CourseID *uint64
	TaskID   *uint64
}

// Create persists a new event after verifying any links.
func (s *EventService) Create(userID uint64, input CreateEventInput) (*models.Event, error) {
	if err := s.checkLinks(userID, input.CourseID, input.TaskID); err != nil {
		return nil, err
	}

	event := &models.Event{
		UserID:   userID,
		Title:    input.Title,
		Start:    input.Start,
		End:      input.End,
		Notes:    input.Notes,
		CourseID: input.CourseID,
		TaskID:   input.TaskID,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// List returns the caller's events in chronological order, optionally
// filtered to one course.
func (s *EventService) List(userID uint64, courseID *uint64) ([]models.Event, error) {
	return s.eventRepo.List(repository.EventFilter{
		OwnerID:  userID,
		CourseID: courseID,
	})
}

// Get returns a single event with its linked course and task preloaded.
func (s *EventService) Get(userID, eventID uint64) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(eventID, "Course", "Task")
	if err != nil {
		return nil, fetchErr(err)
	}
	if err := requireOwner(event, userID); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEventInput carries the optional event changes; absent fields keep
// their stored values.
type UpdateEventInput struct {
	Title    *string
	Start    *time.Time
	End      *time.Time
	Notes    *string
	CourseID *uint64
	TaskID   *uint64
}

// Update applies a coalescing update, re-verifying any newly supplied link.
func (s *EventService) Update(userID, eventID uint64, input UpdateEventInput) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return nil, fetchErr(err)
	}
	if err := requireOwner(event, userID); err != nil {
		return nil, err
	}

	if err := s.checkLinks(userID, input.CourseID, input.TaskID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Start != nil {
		event.Start = *input.Start
	}
	if input.End != nil {
		event.End = input.End
	}
	if input.Notes != nil {
		event.Notes = *input.Notes
	}
	if input.CourseID != nil {
		event.CourseID = input.CourseID
	}
	if input.TaskID != nil {
		event.TaskID = input.TaskID
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// Delete removes the event.
func (s *EventService) Delete(userID, eventID uint64) error {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return fetchErr(err)
	}
	if err := requireOwner(event, userID); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
