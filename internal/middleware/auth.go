package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/dmstancu/workshop-api/internal/constants"
	"github.com/dmstancu/workshop-api/internal/database"
	apierrors "github.com/dmstancu/workshop-api/internal/errors"
	"github.com/dmstancu/workshop-api/internal/models"
)

// RequireAuth resolves the session user and stores the user id, workshop id
// and role in the request context. Every tenant-scoped handler reads the
// workshop id from here, never from the request payload.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw := session.Get(constants.ContextKeyUserID)
		if raw == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, ok := toUint64(raw)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, userID).Error; err != nil {
			// Stale session for a user that no longer exists.
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyWorkshopID, user.WorkshopID)
		c.Set(constants.ContextKeyRole, user.Role)
		c.Next()
	}
}

// RequireAdmin restricts a route to users holding the admin role. Must run
// after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(constants.ContextKeyRole)
		if !exists || role != models.RoleAdmin {
			apierrors.Forbidden(c, "Admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return toUint64(raw)
}

// GetWorkshopID retrieves the caller's resolved workshop ID from context
func GetWorkshopID(c *gin.Context) (uint64, bool) {
	raw, exists := c.Get(constants.ContextKeyWorkshopID)
	if !exists {
		return 0, false
	}
	return toUint64(raw)
}

func toUint64(raw interface{}) (uint64, bool) {
	switch v := raw.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
