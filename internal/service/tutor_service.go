package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

const tutorListCacheKey = "tutors:list"

type tutorRepository interface {
	List(ctx context.Context) ([]models.Tutor, error)
	FindByID(ctx context.Context, id string) (*models.Tutor, error)
	Create(ctx context.Context, tutor *models.Tutor) error
	Update(ctx context.Context, id string, patch models.TutorPatch) error
	Delete(ctx context.Context, id string) error
}

// CreateTutorRequest holds payload for creating tutors.
type CreateTutorRequest struct {
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Specialty       string  `json:"specialty" validate:"required"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profileImageUrl"`
	HourlyRate      *string `json:"hourlyRate"`
	Availability    string  `json:"availability" validate:"required"`
}

// UpdateTutorRequest holds payload for partial tutor updates.
type UpdateTutorRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Specialty       *string `json:"specialty"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profileImageUrl"`
	HourlyRate      *string `json:"hourlyRate"`
	Availability    *string `json:"availability"`
}

// TutorService handles tutor profile use-cases.
type TutorService struct {
	repo      tutorRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTutorService constructs the tutor service.
func NewTutorService(repo tutorRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *TutorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TutorService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns all tutors, newest first.
func (s *TutorService) List(ctx context.Context) ([]models.Tutor, error) {
	var cached []models.Tutor
	if hit, _ := s.cache.Get(ctx, tutorListCacheKey, &cached); hit {
		return cached, nil
	}

	tutors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch tutors")
	}
	if err := s.cache.Set(ctx, tutorListCacheKey, tutors, 0); err != nil {
		s.logger.Warn("failed to cache tutor list", zap.Error(err))
	}
	return tutors, nil
}

// Get returns a single tutor.
func (s *TutorService) Get(ctx context.Context, id string) (*models.Tutor, error) {
	tutor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Tutor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch tutor")
	}
	return tutor, nil
}

// Create registers a new tutor and returns the persisted row.
func (s *TutorService) Create(ctx context.Context, req CreateTutorRequest) (*models.Tutor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to create tutor")
	}
	tutor := &models.Tutor{
		Name:            req.Name,
		Email:           req.Email,
		Specialty:       req.Specialty,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		HourlyRate:      req.HourlyRate,
		Availability:    req.Availability,
	}
	if err := s.repo.Create(ctx, tutor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to create tutor")
	}
	s.cache.Invalidate(ctx, tutorListCacheKey)
	return tutor, nil
}

// Update applies a partial patch and returns the persisted row.
func (s *TutorService) Update(ctx context.Context, id string, req UpdateTutorRequest) (*models.Tutor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to update tutor")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Tutor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update tutor")
	}

	patch := models.TutorPatch{
		Name:            req.Name,
		Email:           req.Email,
		Specialty:       req.Specialty,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		HourlyRate:      req.HourlyRate,
		Availability:    req.Availability,
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to update tutor")
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update tutor")
	}
	s.cache.Invalidate(ctx, tutorListCacheKey)
	return updated, nil
}

// Delete removes a tutor. Sessions referencing the tutor cascade away;
// videos keep their rows with the tutor link nulled.
func (s *TutorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to delete tutor")
	}
	s.cache.Invalidate(ctx, tutorListCacheKey)
	return nil
}
