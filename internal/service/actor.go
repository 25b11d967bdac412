package service

import "github.com/tutorhub/tutorhub-api/internal/models"

// Actor is the authenticated caller performing a request, resolved once
// per request and passed through to the use-case layer.
type Actor struct {
	UserID string
	Role   models.UserRole
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// Owns reports whether the actor is the owning user of a record.
func (a Actor) Owns(ownerID string) bool {
	return a.UserID == ownerID
}
