package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tutorhub/tutorhub-api/internal/models"
)

const sessionColumns = "id, student_id, tutor_id, subject, scheduled_date, duration, status, notes, created_at, updated_at"

// SessionRepository manages persistence for tutoring sessions.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs a SessionRepository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// ListAll returns every session ordered by schedule time, newest first.
func (r *SessionRepository) ListAll(ctx context.Context) ([]models.TutoringSession, error) {
	query := fmt.Sprintf("SELECT %s FROM tutoring_sessions ORDER BY scheduled_date DESC", sessionColumns)
	var sessions []models.TutoringSession
	if err := r.db.SelectContext(ctx, &sessions, query); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// ListByStudent returns a student's sessions, newest first.
func (r *SessionRepository) ListByStudent(ctx context.Context, studentID string) ([]models.TutoringSession, error) {
	query := fmt.Sprintf("SELECT %s FROM tutoring_sessions WHERE student_id = $1 ORDER BY scheduled_date DESC", sessionColumns)
	var sessions []models.TutoringSession
	if err := r.db.SelectContext(ctx, &sessions, query, studentID); err != nil {
		return nil, fmt.Errorf("list sessions by student: %w", err)
	}
	return sessions, nil
}

// ListUpcoming returns a student's scheduled sessions that are still in
// the future, soonest first.
func (r *SessionRepository) ListUpcoming(ctx context.Context, studentID string, now time.Time) ([]models.TutoringSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM tutoring_sessions
        WHERE student_id = $1 AND status = $2 AND scheduled_date >= $3
        ORDER BY scheduled_date ASC`, sessionColumns)
	var sessions []models.TutoringSession
	if err := r.db.SelectContext(ctx, &sessions, query, studentID, models.SessionScheduled, now); err != nil {
		return nil, fmt.Errorf("list upcoming sessions: %w", err)
	}
	return sessions, nil
}

// FindByID fetches a session by ID.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.TutoringSession, error) {
	query := fmt.Sprintf("SELECT %s FROM tutoring_sessions WHERE id = $1", sessionColumns)
	var session models.TutoringSession
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		return nil, err
	}
	return &session, nil
}

// Create inserts a new session with a server-generated ID. A dangling
// student or tutor reference fails on the foreign key constraint.
func (r *SessionRepository) Create(ctx context.Context, session *models.TutoringSession) error {
	session.ID = uuid.NewString()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	const query = `INSERT INTO tutoring_sessions (id, student_id, tutor_id, subject, scheduled_date, duration, status, notes, created_at, updated_at)
        VALUES (:id, :student_id, :tutor_id, :subject, :scheduled_date, :duration, :status, :notes, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// Update applies a partial patch. Nil fields are skipped; identifier
// and timestamps never come from the patch.
func (r *SessionRepository) Update(ctx context.Context, id string, patch models.SessionPatch) error {
	sets := []string{}
	args := []interface{}{id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.TutorID != nil {
		add("tutor_id", *patch.TutorID)
	}
	if patch.Subject != nil {
		add("subject", *patch.Subject)
	}
	if patch.ScheduledDate != nil {
		add("scheduled_date", *patch.ScheduledDate)
	}
	if patch.Duration != nil {
		add("duration", *patch.Duration)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	add("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE tutoring_sessions SET %s WHERE id = $1", strings.Join(sets, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// StudentStats aggregates a student's sessions at the store.
func (r *SessionRepository) StudentStats(ctx context.Context, studentID string, now time.Time) (*models.StudentSessionStats, error) {
	const query = `SELECT
        COUNT(*) AS total_sessions,
        COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_sessions,
        COALESCE(SUM(CASE WHEN status = 'scheduled' AND scheduled_date > $2 THEN 1 ELSE 0 END), 0) AS upcoming_sessions
        FROM tutoring_sessions WHERE student_id = $1`
	var stats models.StudentSessionStats
	if err := r.db.GetContext(ctx, &stats, query, studentID, now); err != nil {
		return nil, fmt.Errorf("student session stats: %w", err)
	}
	return &stats, nil
}

// Count returns the total number of sessions.
func (r *SessionRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM tutoring_sessions`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return total, nil
}

// CountScheduledBetween counts sessions scheduled in [start, end).
func (r *SessionRepository) CountScheduledBetween(ctx context.Context, start, end time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM tutoring_sessions WHERE scheduled_date >= $1 AND scheduled_date < $2`
	var total int
	if err := r.db.GetContext(ctx, &total, query, start, end); err != nil {
		return 0, fmt.Errorf("count sessions in range: %w", err)
	}
	return total, nil
}
