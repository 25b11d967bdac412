package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tutorhub/tutorhub-api/internal/models"
)

const videoColumns = "id, title, description, subject, video_url, thumbnail_url, duration, tutor_id, uploaded_by_id, created_at"

// VideoRepository manages persistence for lecture videos.
type VideoRepository struct {
	db *sqlx.DB
}

// NewVideoRepository constructs a VideoRepository.
func NewVideoRepository(db *sqlx.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// List returns all videos ordered by creation time, newest first.
func (r *VideoRepository) List(ctx context.Context) ([]models.LectureVideo, error) {
	query := fmt.Sprintf("SELECT %s FROM lecture_videos ORDER BY created_at DESC", videoColumns)
	var videos []models.LectureVideo
	if err := r.db.SelectContext(ctx, &videos, query); err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

// FindByID fetches a video by ID.
func (r *VideoRepository) FindByID(ctx context.Context, id string) (*models.LectureVideo, error) {
	query := fmt.Sprintf("SELECT %s FROM lecture_videos WHERE id = $1", videoColumns)
	var video models.LectureVideo
	if err := r.db.GetContext(ctx, &video, query, id); err != nil {
		return nil, err
	}
	return &video, nil
}

// Create inserts a new video with a server-generated ID.
func (r *VideoRepository) Create(ctx context.Context, video *models.LectureVideo) error {
	video.ID = uuid.NewString()
	video.CreatedAt = time.Now().UTC()
	const query = `INSERT INTO lecture_videos (id, title, description, subject, video_url, thumbnail_url, duration, tutor_id, uploaded_by_id, created_at)
        VALUES (:id, :title, :description, :subject, :video_url, :thumbnail_url, :duration, :tutor_id, :uploaded_by_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, video); err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	return nil
}

// Delete removes a video.
func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM lecture_videos WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	return nil
}
