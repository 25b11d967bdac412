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

const feedbackColumns = "id, student_id, subject, message, rating, status, admin_response, created_at, updated_at"

// FeedbackRepository manages persistence for student feedback.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository constructs a FeedbackRepository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// ListAll returns every feedback row, newest first.
func (r *FeedbackRepository) ListAll(ctx context.Context) ([]models.Feedback, error) {
	query := fmt.Sprintf("SELECT %s FROM feedback ORDER BY created_at DESC", feedbackColumns)
	var rows []models.Feedback
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return rows, nil
}

// ListByStudent returns a student's feedback, newest first.
func (r *FeedbackRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Feedback, error) {
	query := fmt.Sprintf("SELECT %s FROM feedback WHERE student_id = $1 ORDER BY created_at DESC", feedbackColumns)
	var rows []models.Feedback
	if err := r.db.SelectContext(ctx, &rows, query, studentID); err != nil {
		return nil, fmt.Errorf("list feedback by student: %w", err)
	}
	return rows, nil
}

// FindByID fetches a feedback row by ID.
func (r *FeedbackRepository) FindByID(ctx context.Context, id string) (*models.Feedback, error) {
	query := fmt.Sprintf("SELECT %s FROM feedback WHERE id = $1", feedbackColumns)
	var row models.Feedback
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new feedback row with a server-generated ID and the
// default pending status.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = uuid.NewString()
	if feedback.Status == "" {
		feedback.Status = models.FeedbackPending
	}
	now := time.Now().UTC()
	feedback.CreatedAt = now
	feedback.UpdatedAt = now
	const query = `INSERT INTO feedback (id, student_id, subject, message, rating, status, admin_response, created_at, updated_at)
        VALUES (:id, :student_id, :subject, :message, :rating, :status, :admin_response, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, feedback); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

// Update applies a partial patch to the admin-mutable fields.
func (r *FeedbackRepository) Update(ctx context.Context, id string, patch models.FeedbackPatch) error {
	sets := []string{}
	args := []interface{}{id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.AdminResponse != nil {
		add("admin_response", *patch.AdminResponse)
	}
	add("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE feedback SET %s WHERE id = $1", strings.Join(sets, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	return nil
}

// Delete removes a feedback row.
func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM feedback WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}

// Stats aggregates feedback rows by status at the store.
func (r *FeedbackRepository) Stats(ctx context.Context) (*models.FeedbackStats, error) {
	const query = `SELECT
        COUNT(*) AS total,
        COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
        COALESCE(SUM(CASE WHEN status = 'reviewed' THEN 1 ELSE 0 END), 0) AS reviewed,
        COALESCE(SUM(CASE WHEN status = 'resolved' THEN 1 ELSE 0 END), 0) AS resolved
        FROM feedback`
	var stats models.FeedbackStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("feedback stats: %w", err)
	}
	return &stats, nil
}
