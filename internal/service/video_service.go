package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

const videoListCacheKey = "videos:list"

type videoRepository interface {
	List(ctx context.Context) ([]models.LectureVideo, error)
	FindByID(ctx context.Context, id string) (*models.LectureVideo, error)
	Create(ctx context.Context, video *models.LectureVideo) error
	Delete(ctx context.Context, id string) error
}

// CreateVideoRequest holds payload for uploading a lecture video.
type CreateVideoRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	Subject      string  `json:"subject" validate:"required"`
	VideoURL     string  `json:"videoUrl" validate:"required"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Duration     *string `json:"duration"`
	TutorID      *string `json:"tutorId"`
}

// VideoService handles lecture video use-cases.
type VideoService struct {
	repo      videoRepository
	users     userFinder
	tutors    tutorFinder
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewVideoService constructs the video service.
func NewVideoService(repo videoRepository, users userFinder, tutors tutorFinder, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *VideoService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VideoService{repo: repo, users: users, tutors: tutors, cache: cache, validator: validate, logger: logger}
}

// List returns all videos with uploader and tutor attached, newest
// first. A video whose tutor was deleted carries a null tutor.
func (s *VideoService) List(ctx context.Context) ([]models.LectureVideoDetail, error) {
	var cached []models.LectureVideoDetail
	if hit, _ := s.cache.Get(ctx, videoListCacheKey, &cached); hit {
		return cached, nil
	}

	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch videos")
	}

	details := make([]models.LectureVideoDetail, len(videos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hydrationConcurrency)
	for i, video := range videos {
		i, video := i, video
		g.Go(func() error {
			detail := models.LectureVideoDetail{LectureVideo: video}
			uploadedBy, err := lookupUser(gctx, s.users, video.UploadedByID)
			if err != nil {
				return err
			}
			detail.UploadedBy = uploadedBy
			if video.TutorID != nil {
				tutor, err := lookupTutor(gctx, s.tutors, *video.TutorID)
				if err != nil {
					return err
				}
				detail.Tutor = tutor
			}
			details[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch videos")
	}

	if err := s.cache.Set(ctx, videoListCacheKey, details, 0); err != nil {
		s.logger.Warn("failed to cache video list", zap.Error(err))
	}
	return details, nil
}

// Get returns a single video.
func (s *VideoService) Get(ctx context.Context, id string) (*models.LectureVideo, error) {
	video, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Video not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch video")
	}
	return video, nil
}

// Create stores a new video uploaded by the actor.
func (s *VideoService) Create(ctx context.Context, actor Actor, req CreateVideoRequest) (*models.LectureVideo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to create video")
	}
	video := &models.LectureVideo{
		Title:        req.Title,
		Description:  req.Description,
		Subject:      req.Subject,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		TutorID:      req.TutorID,
		UploadedByID: actor.UserID,
	}
	if err := s.repo.Create(ctx, video); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to create video")
	}
	s.cache.Invalidate(ctx, videoListCacheKey)
	return video, nil
}

// Delete removes a video.
func (s *VideoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to delete video")
	}
	s.cache.Invalidate(ctx, videoListCacheKey)
	return nil
}
