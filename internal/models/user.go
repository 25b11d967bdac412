package models

import "time"

// UserRole represents the available roles. The model is deliberately
// flat: student or admin, nothing in between.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User represents an application user stored in the users table. Users
// are created lazily on first login or via external identity upsert.
type User struct {
	ID              string    `db:"id" json:"id"`
	Email           *string   `db:"email" json:"email"`
	PasswordHash    *string   `db:"password_hash" json:"-"`
	FirstName       *string   `db:"first_name" json:"firstName"`
	LastName        *string   `db:"last_name" json:"lastName"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profileImageUrl"`
	Role            UserRole  `db:"role" json:"role"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
