package repository

import (
	"context"
	"strings"

	"github.com/studious-dev/studious-api/internal/database"
	"github.com/studious-dev/studious-api/internal/models"
	"gorm.io/gorm"
)

// GormSearchRepository runs case-insensitive substring scans. Acceptable at
// this data scale; an indexed engine would slot in behind the same interface.
type GormSearchRepository struct {
	db *gorm.DB
}

// NewSearchRepository creates a new SearchRepository
func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &GormSearchRepository{db: db}
}

func likePattern(query string) string {
	return "%" + strings.ToLower(query) + "%"
}

// SearchCourses matches the query against course title and description.
func (r *GormSearchRepository) SearchCourses(ctx context.Context, userID uint64, query string, limit int) ([]models.Course, error) {
	pattern := likePattern(query)

	var courses []models.Course
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// SearchTasks matches the query against task title and details.
func (r *GormSearchRepository) SearchTasks(ctx context.Context, userID uint64, query string, limit int) ([]models.Task, error) {
	pattern := likePattern(query)

	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("LOWER(title) LIKE ? OR LOWER(details) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// SearchEvents matches the query against event title and notes.
func (r *GormSearchRepository) SearchEvents(ctx context.Context, userID uint64, query string, limit int) ([]models.Event, error) {
	pattern := likePattern(query)

	var events []models.Event
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("LOWER(title) LIKE ? OR LOWER(notes) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
