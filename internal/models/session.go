package models

import "time"

// SessionStatus enumerates the lifecycle states of a tutoring session.
type SessionStatus string

const (
	SessionScheduled  SessionStatus = "scheduled"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
	SessionInProgress SessionStatus = "in_progress"
)

// TutoringSession is a scheduled booking between a student and a tutor.
// Distinct from AuthSession, which backs cookie authentication.
type TutoringSession struct {
	ID            string        `db:"id" json:"id"`
	StudentID     string        `db:"student_id" json:"studentId"`
	TutorID       string        `db:"tutor_id" json:"tutorId"`
	Subject       string        `db:"subject" json:"subject"`
	ScheduledDate time.Time     `db:"scheduled_date" json:"scheduledDate"`
	Duration      string        `db:"duration" json:"duration"`
	Status        SessionStatus `db:"status" json:"status"`
	Notes         *string       `db:"notes" json:"notes"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updatedAt"`
}

// TutoringSessionDetail is a session with its related records attached.
// Relations are best-effort: a deleted counterpart yields null.
type TutoringSessionDetail struct {
	TutoringSession
	Tutor   *Tutor `json:"tutor"`
	Student *User  `json:"student"`
}

// SessionPatch carries the fields of a partial session update. Nil
// fields are left untouched. Owner references are never part of a
// patch; only admins may move a session and they do so field by field.
type SessionPatch struct {
	TutorID       *string
	Subject       *string
	ScheduledDate *time.Time
	Duration      *string
	Status        *SessionStatus
	Notes         *string
}
