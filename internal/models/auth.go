package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthSession is a durable server-side session keyed by a
// cookie-delivered opaque token.
type AuthSession struct {
	Token     string    `db:"token" json:"-"`
	UserID    string    `db:"user_id" json:"userId"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Expired reports whether the session is past its expiry.
func (s *AuthSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse confirms a successful login.
type LoginResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}

// IdentityClaims is the payload of bearer tokens asserted by the
// external identity provider. Only the subject is required; profile
// fields are used to upsert the user row on first sight.
type IdentityClaims struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	jwt.RegisteredClaims
}
