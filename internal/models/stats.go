package models

// StudentSessionStats summarises a student's sessions. Computed at the
// store, never cached.
type StudentSessionStats struct {
	TotalSessions     int `db:"total_sessions" json:"totalSessions"`
	CompletedSessions int `db:"completed_sessions" json:"completedSessions"`
	UpcomingSessions  int `db:"upcoming_sessions" json:"upcomingSessions"`
}

// AdminStats summarises platform-wide counts for the admin dashboard.
type AdminStats struct {
	TotalStudents int `json:"totalStudents"`
	TotalTutors   int `json:"totalTutors"`
	TotalSessions int `json:"totalSessions"`
	SessionsToday int `json:"sessionsToday"`
}

// FeedbackStats summarises feedback rows by status.
type FeedbackStats struct {
	Total    int `db:"total" json:"total"`
	Pending  int `db:"pending" json:"pending"`
	Reviewed int `db:"reviewed" json:"reviewed"`
	Resolved int `db:"resolved" json:"resolved"`
}
