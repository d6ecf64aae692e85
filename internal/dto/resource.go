package dto

import (
	"time"

	"github.com/studious-dev/studious-api/internal/models"
)

// ResourceDTO represents an uploaded course material in API responses.
type ResourceDTO struct {
	ID         uint64     `json:"id"`
	CourseID   uint64     `json:"course_id"`
	FileName   string     `json:"file_name"`
	FilePath   string     `json:"file_path"`
	FileType   string     `json:"file_type"`
	FileSize   int64      `json:"file_size"`
	UploadedAt time.Time  `json:"uploaded_at"`
	Course     *CourseRef `json:"course,omitempty"`
}

// ToResourceDTO converts a Resource model to ResourceDTO, carrying the
// course title when preloaded.
func ToResourceDTO(resource models.Resource) ResourceDTO {
	dto := ResourceDTO{
		ID:         resource.ID,
		CourseID:   resource.CourseID,
		FileName:   resource.FileName,
		FilePath:   resource.FilePath,
		FileType:   resource.FileType,
		FileSize:   resource.FileSize,
		UploadedAt: resource.UploadedAt,
	}

	if resource.Course != nil {
		dto.Course = &CourseRef{
			ID:    resource.Course.ID,
			Title: resource.Course.Title,
		}
	}

	return dto
}

// ToResourceDTOs converts a slice of resources.
func ToResourceDTOs(resources []models.Resource) []ResourceDTO {
	dtos := make([]ResourceDTO, len(resources))
	for i, resource := range resources {
		dtos[i] = ToResourceDTO(resource)
	}
	return dtos
}
