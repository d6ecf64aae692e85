package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studious-dev/studious-api/internal/database"
	apierrors "github.com/studious-dev/studious-api/internal/errors"
	"github.com/studious-dev/studious-api/internal/models"
	"github.com/studious-dev/studious-api/internal/utils"
)

// ContextKeyUserID is the gin context key carrying the authenticated user's ID.
const ContextKeyUserID = "user_id"

// RequireAuth verifies the bearer token on each request and attaches the
// resolved user ID to the context. The secret is injected per router, not
// read from package state.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			apierrors.Unauthorized(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		userID, err := utils.ExtractUserID(parts[1], secret)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// The subject must still resolve to a live user record.
		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err != nil {
			apierrors.Unauthorized(c, "Not authorized")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}
