package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tutorhub/tutorhub-api/internal/models"
)

const materialColumns = "id, title, description, subject, file_url, file_type, uploaded_by_id, created_at"

// MaterialRepository manages persistence for learning materials.
type MaterialRepository struct {
	db *sqlx.DB
}

// NewMaterialRepository constructs a MaterialRepository.
func NewMaterialRepository(db *sqlx.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// List returns all materials ordered by creation time, newest first.
func (r *MaterialRepository) List(ctx context.Context) ([]models.LearningMaterial, error) {
	query := fmt.Sprintf("SELECT %s FROM learning_materials ORDER BY created_at DESC", materialColumns)
	var materials []models.LearningMaterial
	if err := r.db.SelectContext(ctx, &materials, query); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

// FindByID fetches a material by ID.
func (r *MaterialRepository) FindByID(ctx context.Context, id string) (*models.LearningMaterial, error) {
	query := fmt.Sprintf("SELECT %s FROM learning_materials WHERE id = $1", materialColumns)
	var material models.LearningMaterial
	if err := r.db.GetContext(ctx, &material, query, id); err != nil {
		return nil, err
	}
	return &material, nil
}

// Create inserts a new material with a server-generated ID.
func (r *MaterialRepository) Create(ctx context.Context, material *models.LearningMaterial) error {
	material.ID = uuid.NewString()
	material.CreatedAt = time.Now().UTC()
	const query = `INSERT INTO learning_materials (id, title, description, subject, file_url, file_type, uploaded_by_id, created_at)
        VALUES (:id, :title, :description, :subject, :file_url, :file_type, :uploaded_by_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, material); err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// Delete removes a material.
func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM learning_materials WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}
