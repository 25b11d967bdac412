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

const tutorColumns = "id, name, email, specialty, bio, profile_image_url, hourly_rate, availability, created_at, updated_at"

// TutorRepository manages persistence for tutor profiles.
type TutorRepository struct {
	db *sqlx.DB
}

// NewTutorRepository constructs a TutorRepository.
func NewTutorRepository(db *sqlx.DB) *TutorRepository {
	return &TutorRepository{db: db}
}

// List returns all tutors ordered by creation time, newest first.
func (r *TutorRepository) List(ctx context.Context) ([]models.Tutor, error) {
	query := fmt.Sprintf("SELECT %s FROM tutors ORDER BY created_at DESC", tutorColumns)
	var tutors []models.Tutor
	if err := r.db.SelectContext(ctx, &tutors, query); err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	return tutors, nil
}

// FindByID fetches a tutor by ID.
func (r *TutorRepository) FindByID(ctx context.Context, id string) (*models.Tutor, error) {
	query := fmt.Sprintf("SELECT %s FROM tutors WHERE id = $1", tutorColumns)
	var tutor models.Tutor
	if err := r.db.GetContext(ctx, &tutor, query, id); err != nil {
		return nil, err
	}
	return &tutor, nil
}

// Create inserts a new tutor record with a server-generated ID.
func (r *TutorRepository) Create(ctx context.Context, tutor *models.Tutor) error {
	tutor.ID = uuid.NewString()
	now := time.Now().UTC()
	tutor.CreatedAt = now
	tutor.UpdatedAt = now
	const query = `INSERT INTO tutors (id, name, email, specialty, bio, profile_image_url, hourly_rate, availability, created_at, updated_at)
        VALUES (:id, :name, :email, :specialty, :bio, :profile_image_url, :hourly_rate, :availability, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, tutor); err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}
	return nil
}

// Update applies a partial patch. Nil fields are skipped and updated_at
// is always refreshed by the data layer, never by the caller.
func (r *TutorRepository) Update(ctx context.Context, id string, patch models.TutorPatch) error {
	sets := []string{}
	args := []interface{}{id}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Specialty != nil {
		add("specialty", *patch.Specialty)
	}
	if patch.Bio != nil {
		add("bio", *patch.Bio)
	}
	if patch.ProfileImageURL != nil {
		add("profile_image_url", *patch.ProfileImageURL)
	}
	if patch.HourlyRate != nil {
		add("hourly_rate", *patch.HourlyRate)
	}
	if patch.Availability != nil {
		add("availability", *patch.Availability)
	}
	add("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE tutors SET %s WHERE id = $1", strings.Join(sets, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update tutor: %w", err)
	}
	return nil
}

// Delete removes a tutor. Dependent sessions cascade and dependent
// videos keep their row with tutor_id nulled, per the schema.
func (r *TutorRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM tutors WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete tutor: %w", err)
	}
	return nil
}

// Count returns the total number of tutors.
func (r *TutorRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM tutors`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count tutors: %w", err)
	}
	return total, nil
}
