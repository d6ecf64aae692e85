package dto

import "github.com/studious-dev/studious-api/internal/models"

// CourseDetailResponse bundles a course with its tasks and events for the
// per-course page.
type CourseDetailResponse struct {
	Course *models.Course `json:"course"`
	Tasks  []models.Task  `json:"tasks"`
	Events []EventDTO     `json:"events"`
}
