package repository

import (
	"github.com/studious-dev/studious-api/internal/models"
	"gorm.io/gorm"
)

// GormResourceRepository is a GORM implementation of ResourceRepository
type GormResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &GormResourceRepository{db: db}
}

// Create creates a new resource record
func (r *GormResourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

// FindByID finds a resource by ID with optional preloading
func (r *GormResourceRepository) FindByID(id uint64, preload ...string) (*models.Resource, error) {
	var resource models.Resource
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// ListByCourse retrieves a course's resources, newest upload first
func (r *GormResourceRepository) ListByCourse(courseID uint64) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.
		Where("course_id = ?", courseID).
		Order("uploaded_at DESC").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// Delete removes a resource record only; the file on disk is managed
// outside the database.
func (r *GormResourceRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Resource{}, id).Error
}
