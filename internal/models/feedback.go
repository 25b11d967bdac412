package models

import "time"

// FeedbackStatus enumerates the review states of student feedback.
type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "pending"
	FeedbackReviewed FeedbackStatus = "reviewed"
	FeedbackResolved FeedbackStatus = "resolved"
)

// Feedback is a message submitted by a student and triaged by admins.
type Feedback struct {
	ID            string         `db:"id" json:"id"`
	StudentID     string         `db:"student_id" json:"studentId"`
	Subject       string         `db:"subject" json:"subject"`
	Message       string         `db:"message" json:"message"`
	Rating        *string        `db:"rating" json:"rating"`
	Status        FeedbackStatus `db:"status" json:"status"`
	AdminResponse *string        `db:"admin_response" json:"adminResponse"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updatedAt"`
}

// FeedbackDetail attaches the submitting student.
type FeedbackDetail struct {
	Feedback
	Student *User `json:"student"`
}

// FeedbackPatch carries the admin-mutable fields of a feedback row.
type FeedbackPatch struct {
	Status        *FeedbackStatus
	AdminResponse *string
}
