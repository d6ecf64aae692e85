package services

import (
	"fmt"

	"github.com/studious-dev/studious-api/internal/models"
	"github.com/studious-dev/studious-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// CourseService handles course business logic.
type CourseService struct {
	courseRepo repository.CourseRepository
	taskRepo   repository.TaskRepository
	eventRepo  repository.EventRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo repository.CourseRepository, taskRepo repository.TaskRepository, eventRepo repository.EventRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		taskRepo:   taskRepo,
		eventRepo:  eventRepo,
	}
}

// CreateCourseInput holds the fields for a new course.
type CreateCourseInput struct {
	Title       string
	Description string
}

// Create persists a new course owned by the caller.
func (s *CourseService) Create(userID uint64, input CreateCourseInput) (*models.Course, error) {
	course := &models.Course{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := s.courseRepo.Create(course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

// List returns the caller's courses, newest first.
func (s *CourseService) List(userID uint64) ([]models.Course, error) {
	return s.courseRepo.ListByOwner(userID)
}

// Get returns a single course after the ownership check.
func (s *CourseService) Get(userID, courseID uint64) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		return nil, fetchErr(err)
	}
	if err := requireOwner(course, userID); err != nil {
		return nil, err
	}
	return course, nil
}

// CourseDetail bundles a course with its tasks and events for the
// per-course page.
type CourseDetail struct {
	Course *models.Course
	Tasks  []models.Task
	Events []models.Event
}

// GetDetail fetches the course plus its tasks and events concurrently and
// joins the results.
func (s *CourseService) GetDetail(userID, courseID uint64) (*CourseDetail, error) {
	course, err := s.Get(userID, courseID)
	if err != nil {
		return nil, err
	}

	detail := &CourseDetail{Course: course}

	var g errgroup.Group

	g.Go(func() error {
		tasks, err := s.taskRepo.List(repository.TaskFilter{OwnerID: userID, CourseID: &courseID})
		if err != nil {
			return err
		}
		detail.Tasks = tasks
		return nil
	})

	g.Go(func() error {
		events, err := s.eventRepo.List(repository.EventFilter{OwnerID: userID, CourseID: &courseID})
		if err != nil {
			return err
		}
		detail.Events = events
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load course detail: %w", err)
	}

	return detail, nil
}

// UpdateCourseInput carries the optional course changes; absent fields keep
// their stored values.
type UpdateCourseInput struct {
	Title       *string
	Description *string
}

// Update applies a coalescing update to the course.
func (s *CourseService) Update(userID, courseID uint64, input UpdateCourseInput) (*models.Course, error) {
	course, err := s.Get(userID, courseID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}

	if err := s.courseRepo.Update(course); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return course, nil
}

// Delete removes the course row. Dependent tasks, events and resources are
// not cascaded.
func (s *CourseService) Delete(userID, courseID uint64) error {
	if _, err := s.Get(userID, courseID); err != nil {
		return err
	}
	if err := s.courseRepo.Delete(courseID); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}
