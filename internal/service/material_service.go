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

const materialListCacheKey = "materials:list"

type materialRepository interface {
	List(ctx context.Context) ([]models.LearningMaterial, error)
	FindByID(ctx context.Context, id string) (*models.LearningMaterial, error)
	Create(ctx context.Context, material *models.LearningMaterial) error
	Delete(ctx context.Context, id string) error
}

// CreateMaterialRequest holds payload for uploading a material. The
// uploader always comes from the acting identity.
type CreateMaterialRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Subject     string  `json:"subject" validate:"required"`
	FileURL     string  `json:"fileUrl" validate:"required"`
	FileType    *string `json:"fileType"`
}

// MaterialService handles learning material use-cases.
type MaterialService struct {
	repo      materialRepository
	users     userFinder
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMaterialService constructs the material service.
func NewMaterialService(repo materialRepository, users userFinder, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *MaterialService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialService{repo: repo, users: users, cache: cache, validator: validate, logger: logger}
}

// List returns all materials with the uploader attached, newest first.
func (s *MaterialService) List(ctx context.Context) ([]models.LearningMaterialDetail, error) {
	var cached []models.LearningMaterialDetail
	if hit, _ := s.cache.Get(ctx, materialListCacheKey, &cached); hit {
		return cached, nil
	}

	materials, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch materials")
	}

	details := make([]models.LearningMaterialDetail, len(materials))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hydrationConcurrency)
	for i, material := range materials {
		i, material := i, material
		g.Go(func() error {
			detail := models.LearningMaterialDetail{LearningMaterial: material}
			uploadedBy, err := lookupUser(gctx, s.users, material.UploadedByID)
			if err != nil {
				return err
			}
			detail.UploadedBy = uploadedBy
			details[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch materials")
	}

	if err := s.cache.Set(ctx, materialListCacheKey, details, 0); err != nil {
		s.logger.Warn("failed to cache material list", zap.Error(err))
	}
	return details, nil
}

// Get returns a single material.
func (s *MaterialService) Get(ctx context.Context, id string) (*models.LearningMaterial, error) {
	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Material not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch material")
	}
	return material, nil
}

// Create stores a new material uploaded by the actor.
func (s *MaterialService) Create(ctx context.Context, actor Actor, req CreateMaterialRequest) (*models.LearningMaterial, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to create material")
	}
	material := &models.LearningMaterial{
		Title:        req.Title,
		Description:  req.Description,
		Subject:      req.Subject,
		FileURL:      req.FileURL,
		FileType:     req.FileType,
		UploadedByID: actor.UserID,
	}
	if err := s.repo.Create(ctx, material); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to create material")
	}
	s.cache.Invalidate(ctx, materialListCacheKey)
	return material, nil
}

// Delete removes a material.
func (s *MaterialService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to delete material")
	}
	s.cache.Invalidate(ctx, materialListCacheKey)
	return nil
}
