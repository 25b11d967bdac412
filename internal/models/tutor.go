package models

import "time"

// Tutor represents a tutor profile managed by administrators.
type Tutor struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Email           string    `db:"email" json:"email"`
	Specialty       string    `db:"specialty" json:"specialty"`
	Bio             *string   `db:"bio" json:"bio"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profileImageUrl"`
	HourlyRate      *string   `db:"hourly_rate" json:"hourlyRate"`
	Availability    string    `db:"availability" json:"availability"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// TutorPatch carries the fields of a partial tutor update. Nil fields
// are left untouched.
type TutorPatch struct {
	Name            *string
	Email           *string
	Specialty       *string
	Bio             *string
	ProfileImageURL *string
	HourlyRate      *string
	Availability    *string
}
