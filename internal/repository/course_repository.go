package repository

import (
	"github.com/studious-dev/studious-api/internal/database"
	"github.com/studious-dev/studious-api/internal/models"
	"gorm.io/gorm"
)

// GormCourseRepository is a GORM implementation of CourseRepository
type GormCourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &GormCourseRepository{db: db}
}

// Create creates a new course
func (r *GormCourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

// FindByID finds a course by ID
func (r *GormCourseRepository) FindByID(id uint64) (*models.Course, error) {
	var course models.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// ListByOwner retrieves a user's courses, newest first
func (r *GormCourseRepository) ListByOwner(userID uint64) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.
		Scopes(database.OwnedBy(userID)).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// Update persists changes to a course
func (r *GormCourseRepository) Update(course *models.Course) error {
	return r.db.Save(course).Error
}

// Delete removes a course row. Tasks, events and resources that reference
// it are intentionally left behind.
func (r *GormCourseRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Course{}, id).Error
}
