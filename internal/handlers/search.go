package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/studious-dev/studious-api/internal/errors"
	"github.com/studious-dev/studious-api/internal/middleware"
	"github.com/studious-dev/studious-api/internal/services"
)

// SearchHandler serves the cross-collection search endpoint.
type SearchHandler struct {
	searchService *services.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search runs the query against courses, tasks and events concurrently and
// returns the hits grouped by kind.
func (h *SearchHandler) Search(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuery) {
			apierrors.BadRequest(c, "Search query is required")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}
