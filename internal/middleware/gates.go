package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/service"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/response"
)

// RequireAuth blocks anonymous requests. It loads the account behind
// the resolved identity into the context; an identity whose user row no
// longer exists counts as anonymous.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		idValue, exists := c.Get(ContextUserIDKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		user, err := auth.UserByID(c.Request.Context(), idValue.(string))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if user == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAdmin blocks authenticated non-admin requests. It must run
// after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		user := userValue.(*models.User)
		if user.Role != models.RoleAdmin {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "Forbidden: Admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
