package repository

import (
	"github.com/studious-dev/studious-api/internal/database"
	"github.com/studious-dev/studious-api/internal/models"
	"gorm.io/gorm"
)

// GormEventRepository is a GORM implementation of EventRepository
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &GormEventRepository{db: db}
}

// Create creates a new event
func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// FindByID finds an event by ID with optional preloading
func (r *GormEventRepository) FindByID(id uint64, preload ...string) (*models.Event, error) {
	var event models.Event
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List retrieves events matching the filter, ordered chronologically by
// start time, with linked course and task preloaded for denormalization.
func (r *GormEventRepository) List(filter EventFilter) ([]models.Event, error) {
	query := r.db.
		Scopes(database.OwnedBy(filter.OwnerID)).
		Preload("Course").
		Preload("Task").
		Order("start ASC")

	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update persists changes to an event
func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes an event
func (r *GormEventRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Event{}, id).Error
}
