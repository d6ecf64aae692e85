package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/studious-dev/studious-api/internal/errors"
	"github.com/studious-dev/studious-api/internal/services"
)

// respondEntityError maps the shared service sentinels onto HTTP responses.
// Wrong-owner access responds 401, matching the rest of the API surface.
func respondEntityError(c *gin.Context, err error, kind string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, kind+" not found")
	case errors.Is(err, services.ErrNotOwner):
		apierrors.Unauthorized(c, "Not authorized")
	case errors.Is(err, services.ErrInvalidCourse):
		apierrors.Unauthorized(c, "Invalid course")
	case errors.Is(err, services.ErrInvalidTask):
		apierrors.Unauthorized(c, "Invalid task")
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, "Invalid task status")
	case errors.Is(err, services.ErrCourseNotFound):
		apierrors.NotFound(c, "Course not found")
	default:
		apierrors.InternalError(c, "")
	}
}
