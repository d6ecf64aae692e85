package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studious-dev/studious-api/internal/dto"
	apierrors "github.com/studious-dev/studious-api/internal/errors"
	"github.com/studious-dev/studious-api/internal/middleware"
	"github.com/studious-dev/studious-api/internal/services"
)

// CourseHandler coordinates course CRUD handlers.
type CourseHandler struct {
	courseService *services.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// CreateCourse creates a course owned by the caller.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateCourseRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Title == "" {
		apierrors.BadRequest(c, "Title is required")
		return
	}

	course, err := h.courseService.Create(userID, services.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondEntityError(c, err, "Course")
		return
	}

	c.JSON(http.StatusCreated, course)
}

// ListCourses returns the caller's courses, newest first.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	courses, err := h.courseService.List(userID)
	if err != nil {
		respondEntityError(c, err, "Course")
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GetCourse returns a single course.
func (h *CourseHandler) GetCourse(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.Get(userID, courseID)
	if err != nil {
		respondEntityError(c, err, "Course")
		return
	}

	c.JSON(http.StatusOK, course)
}

// GetCourseDetail returns the course together with its tasks and events,
// fetched concurrently.
func (h *CourseHandler) GetCourseDetail(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.courseService.GetDetail(userID, courseID)
	if err != nil {
		respondEntityError(c, err, "Course")
		return
	}

	c.JSON(http.StatusOK, dto.CourseDetailResponse{
		Course: detail.Course,
		Tasks:  detail.Tasks,
		Events: dto.ToEventDTOs(detail.Events),
	})
}

// UpdateCourse applies a partial update; omitted fields are left unchanged.
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateCourseRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	course, err := h.courseService.Update(userID, courseID, services.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondEntityError(c, err, "Course")
		return
	}

	c.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course. Tasks, events and resources that point at
// it are left in place.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(userID, courseID); err != nil {
		respondEntityError(c, err, "Course")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course removed"})
}
