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

type feedbackRepository interface {
	ListAll(ctx context.Context) ([]models.Feedback, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Feedback, error)
	FindByID(ctx context.Context, id string) (*models.Feedback, error)
	Create(ctx context.Context, feedback *models.Feedback) error
	Update(ctx context.Context, id string, patch models.FeedbackPatch) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.FeedbackStats, error)
}

// CreateFeedbackRequest holds payload for submitting feedback. The
// submitter always comes from the acting identity.
type CreateFeedbackRequest struct {
	Subject string  `json:"subject" validate:"required"`
	Message string  `json:"message" validate:"required"`
	Rating  *string `json:"rating"`
}

// UpdateFeedbackRequest holds the admin triage fields.
type UpdateFeedbackRequest struct {
	Status        *models.FeedbackStatus `json:"status" validate:"omitempty,oneof=pending reviewed resolved"`
	AdminResponse *string                `json:"adminResponse"`
}

// FeedbackService handles student feedback use-cases.
type FeedbackService struct {
	repo      feedbackRepository
	users     userFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeedbackService constructs the feedback service.
func NewFeedbackService(repo feedbackRepository, users userFinder, validate *validator.Validate, logger *zap.Logger) *FeedbackService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{repo: repo, users: users, validator: validate, logger: logger}
}

// List returns feedback visible to the actor: everything for admins,
// own submissions for students, newest first, with the student attached.
func (s *FeedbackService) List(ctx context.Context, actor Actor) ([]models.FeedbackDetail, error) {
	var (
		rows []models.Feedback
		err  error
	)
	if actor.IsAdmin() {
		rows, err = s.repo.ListAll(ctx)
	} else {
		rows, err = s.repo.ListByStudent(ctx, actor.UserID)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch feedback")
	}
	return s.hydrate(ctx, rows)
}

// Get returns a single feedback row. Students may only read their own.
func (s *FeedbackService) Get(ctx context.Context, id string, actor Actor) (*models.Feedback, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Feedback not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch feedback")
	}
	if !actor.IsAdmin() && !actor.Owns(row.StudentID) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "Forbidden")
	}
	return row, nil
}

// Create stores a new feedback row for the actor. Status always starts
// pending regardless of the payload.
func (s *FeedbackService) Create(ctx context.Context, actor Actor, req CreateFeedbackRequest) (*models.Feedback, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to create feedback")
	}
	feedback := &models.Feedback{
		StudentID: actor.UserID,
		Subject:   req.Subject,
		Message:   req.Message,
		Rating:    req.Rating,
		Status:    models.FeedbackPending,
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to create feedback")
	}
	return feedback, nil
}

// Update applies the admin triage patch and returns the persisted row.
func (s *FeedbackService) Update(ctx context.Context, id string, req UpdateFeedbackRequest) (*models.Feedback, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to update feedback")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Feedback not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update feedback")
	}

	patch := models.FeedbackPatch{Status: req.Status, AdminResponse: req.AdminResponse}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to update feedback")
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update feedback")
	}
	return updated, nil
}

// Delete removes a feedback row.
func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to delete feedback")
	}
	return nil
}

// Stats aggregates feedback rows by status at the store.
func (s *FeedbackService) Stats(ctx context.Context) (*models.FeedbackStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch feedback stats")
	}
	return stats, nil
}

func (s *FeedbackService) hydrate(ctx context.Context, rows []models.Feedback) ([]models.FeedbackDetail, error) {
	details := make([]models.FeedbackDetail, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hydrationConcurrency)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			detail := models.FeedbackDetail{Feedback: row}
			student, err := lookupUser(gctx, s.users, row.StudentID)
			if err != nil {
				return err
			}
			detail.Student = student
			details[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch feedback")
	}
	return details, nil
}
