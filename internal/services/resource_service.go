package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/studious-dev/studious-api/internal/models"
	"github.com/studious-dev/studious-api/internal/repository"
	"gorm.io/gorm"
)

var ErrCourseNotFound = errors.New("course not found")

// ResourceService handles uploaded course materials. Files land on local
// disk under the configured upload directory; the database keeps the
// metadata record.
type ResourceService struct {
	resourceRepo repository.ResourceRepository
	courseRepo   repository.CourseRepository
	uploadDir    string
}

// NewResourceService creates a new ResourceService.
func NewResourceService(resourceRepo repository.ResourceRepository, courseRepo repository.CourseRepository, uploadDir string) *ResourceService {
	return &ResourceService{
		resourceRepo: resourceRepo,
		courseRepo:   courseRepo,
		uploadDir:    uploadDir,
	}
}

// Upload stores the file on disk under a unique name and records it
// against the course. The course must belong to the caller.
func (s *ResourceService) Upload(userID, courseID uint64, file *multipart.FileHeader) (*models.Resource, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCourse
		}
		return nil, fmt.Errorf("failed to check course: %w", err)
	}
	if course.OwnerID() != userID {
		return nil, ErrInvalidCourse
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload dir: %w", err)
	}

	storedName := uuid.NewString() + "-" + filepath.Base(file.Filename)
	storedPath := filepath.Join(s.uploadDir, storedName)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(storedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	resource := &models.Resource{
		UserID:   userID,
		CourseID: courseID,
		FileName: file.Filename,
		FilePath: storedPath,
		FileType: file.Header.Get("Content-Type"),
		FileSize: file.Size,
	}

	if err := s.resourceRepo.Create(resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return resource, nil
}

// ListByCourse returns the resources of one of the caller's courses.
func (s *ResourceService) ListByCourse(userID, courseID uint64) ([]models.Resource, error) {
	course, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to check course: %w", err)
	}
	if err := requireOwner(course, userID); err != nil {
		return nil, err
	}

	return s.resourceRepo.ListByCourse(courseID)
}

// Get returns a single resource with its course preloaded.
func (s *ResourceService) Get(userID, resourceID uint64) (*models.Resource, error) {
	resource, err := s.resourceRepo.FindByID(resourceID, "Course")
	if err != nil {
		return nil, fetchErr(err)
	}
	if err := requireOwner(resource, userID); err != nil {
		return nil, err
	}
	return resource, nil
}

// Delete removes the resource record. The stored file stays on disk; its
// lifecycle is managed externally.
func (s *ResourceService) Delete(userID, resourceID uint64) error {
	resource, err := s.resourceRepo.FindByID(resourceID)
	if err != nil {
		return fetchErr(err)
	}
	if err := requireOwner(resource, userID); err != nil {
		return err
	}
	if err := s.resourceRepo.Delete(resourceID); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	return nil
}
