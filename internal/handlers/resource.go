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

// ResourceHandler coordinates uploaded course material handlers.
type ResourceHandler struct {
	resourceService *services.ResourceService
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(resourceService *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
	}
}

// UploadResource accepts a multipart upload (field "file") tied to a
// course (field "course").
func (h *ResourceHandler) UploadResource(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "Please upload a file")
		return
	}

	courseRaw := c.PostForm("course")
	if courseRaw == "" {
		apierrors.BadRequest(c, "Course ID is required")
		return
	}
	courseID, err := strconv.ParseUint(courseRaw, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid course ID")
		return
	}

	resource, err := h.resourceService.Upload(userID, courseID, file)
	if err != nil {
		respondEntityError(c, err, "Resource")
		return
	}

	c.JSON(http.StatusCreated, dto.ToResourceDTO(*resource))
}

// ListCourseResources returns all resources of one of the caller's courses,
// newest upload first.
func (h *ResourceHandler) ListCourseResources(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	resources, err := h.resourceService.ListByCourse(userID, courseID)
	if err != nil {
		respondEntityError(c, err, "Resource")
		return
	}

	c.JSON(http.StatusOK, dto.ToResourceDTOs(resources))
}

// GetResource returns a single resource with its course title.
func (h *ResourceHandler) GetResource(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	resourceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resource, err := h.resourceService.Get(userID, resourceID)
	if err != nil {
		respondEntityError(c, err, "Resource")
		return
	}

	c.JSON(http.StatusOK, dto.ToResourceDTO(*resource))
}

// DeleteResource removes the resource record; the stored file is left on
// disk.
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	resourceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.resourceService.Delete(userID, resourceID); err != nil {
		respondEntityError(c, err, "Resource")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resource removed"})
}
