package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/studious-dev/studious-api/internal/models"
	"github.com/studious-dev/studious-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidCourse = errors.New("invalid course")
	ErrInvalidStatus = errors.New("invalid task status")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo   repository.TaskRepository
	courseRepo repository.CourseRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, courseRepo repository.CourseRepository) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		courseRepo: courseRepo,
	}
}

// requireOwnedCourse verifies that the referenced course exists and belongs
// to the caller. A missing course reads as invalid, same as a foreign one.
func (s *TaskService) requireOwnedCourse(userID, courseID uint64) error {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCourse
		}
		return fmt.Errorf("failed to check course: %w", err)
	}
	if course.OwnerID() != userID {
		return ErrInvalidCourse
	}
	return nil
}

// CreateTaskInput holds the fields for a new task.
type CreateTaskInput struct {
	Title    string
	Details  string
	CourseID uint64
	DueDate  *time.Time
}

// Create persists a new task after verifying the course link. Status always
// starts at todo.
func (s *TaskService) Create(userID uint64, input CreateTaskInput) (*models.Task, error) {
	if err := s.requireOwnedCourse(userID, input.CourseID); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:   userID,
		CourseID: input.CourseID,
		Title:    input.Title,
		Details:  input.Details,
		Status:   models.TaskStatusTodo,
		DueDate:  input.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// List returns the caller's tasks, optionally filtered to one course.
func (s *TaskService) List(userID uint64, courseID *uint64) ([]models.Task, error) {
	if courseID != nil {
		if err := s.requireOwnedCourse(userID, *courseID); err != nil {
			return nil, err
		}
	}

	return s.taskRepo.List(repository.TaskFilter{
		OwnerID:  userID,
		CourseID: courseID,
	})
}

// Get returns a single task after the ownership check.
func (s *TaskService) Get(userID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, fetchErr(err)
	}
	if err := requireOwner(task, userID); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTaskInput carries the optional task changes; absent fields keep
// their stored values.
type UpdateTaskInput struct {
	Title   *string
	Details *string
	Status  *models.TaskStatus
	DueDate *time.Time
}

// Update applies a coalescing update to the task.
func (s *TaskService) Update(userID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.Get(userID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Details != nil {
		task.Details = *input.Details
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes the task.
func (s *TaskService) Delete(userID, taskID uint64) error {
	if _, err := s.Get(userID, taskID); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
