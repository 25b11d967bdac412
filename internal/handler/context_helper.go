package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tutorhub/tutorhub-api/internal/middleware"
	"github.com/tutorhub/tutorhub-api/internal/models"
	"github.com/tutorhub/tutorhub-api/internal/service"
)

// currentUser returns the authenticated account loaded by the auth gate.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// actorFrom projects the authenticated account into the service-layer
// acting identity.
func actorFrom(c *gin.Context) service.Actor {
	user, ok := currentUser(c)
	if !ok {
		return service.Actor{}
	}
	return service.Actor{UserID: user.ID, Role: user.Role}
}
