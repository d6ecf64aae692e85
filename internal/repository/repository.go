package repository

import (
	"context"

	"github.com/studious-dev/studious-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// CourseRepository defines the interface for course data access
type CourseRepository interface {
	// Create creates a new course
	Create(course *models.Course) error

	// FindByID finds a course by ID
	FindByID(id uint64) (*models.Course, error)

	// ListByOwner retrieves a user's courses, newest first
	ListByOwner(userID uint64) ([]models.Course, error)

	// Update persists changes to a course
	Update(course *models.Course) error

	// Delete removes a course. Dependent tasks, events and resources are
	// left in place.
	Delete(id uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	OwnerID  uint64
	CourseID *uint64
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks matching the filter, newest first
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete removes a task
	Delete(id uint64) error
}

// EventFilter holds filtering options for listing events
type EventFilter struct {
	OwnerID  uint64
	CourseID *uint64
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(event *models.Event) error

	// FindByID finds an event by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Event, error)

	// List retrieves events matching the filter, ordered by start time
	List(filter EventFilter) ([]models.Event, error)

	// Update persists changes to an event
	Update(event *models.Event) error

	// Delete removes an event
	Delete(id uint64) error
}

// ResourceRepository defines the interface for resource data access
type ResourceRepository interface {
	// Create creates a new resource record
	Create(resource *models.Resource) error

	// FindByID finds a resource by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Resource, error)

	// ListByCourse retrieves a course's resources, newest upload first
	ListByCourse(courseID uint64) ([]models.Resource, error)

	// Delete removes a resource record. The stored file is not touched.
	Delete(id uint64) error
}

// SearchRepository defines the owner-scoped substring queries behind the
// search fan-out. Implementations may swap the matching engine as long as
// the capped-substring contract holds.
type SearchRepository interface {
	SearchCourses(ctx context.Context, userID uint64, query string, limit int) ([]models.Course, error)
	SearchTasks(ctx context.Context, userID uint64, query string, limit int) ([]models.Task, error)
	SearchEvents(ctx context.Context, userID uint64, query string, limit int) ([]models.Event, error)
}
