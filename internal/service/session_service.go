package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

const hydrationConcurrency = 8

type sessionRepository interface {
	ListAll(ctx context.Context) ([]models.TutoringSession, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.TutoringSession, error)
	ListUpcoming(ctx context.Context, studentID string, now time.Time) ([]models.TutoringSession, error)
	FindByID(ctx context.Context, id string) (*models.TutoringSession, error)
	Create(ctx context.Context, session *models.TutoringSession) error
	Update(ctx context.Context, id string, patch models.SessionPatch) error
	StudentStats(ctx context.Context, studentID string, now time.Time) (*models.StudentSessionStats, error)
}

// CreateSessionRequest holds payload for booking a session. The student
// reference always comes from the acting identity, never the body.
type CreateSessionRequest struct {
	TutorID       string                `json:"tutorId" validate:"required"`
	Subject       string                `json:"subject" validate:"required"`
	ScheduledDate time.Time             `json:"scheduledDate" validate:"required"`
	Duration      string                `json:"duration" validate:"required"`
	Status        *models.SessionStatus `json:"status" validate:"omitempty,oneof=scheduled completed cancelled in_progress"`
	Notes         *string               `json:"notes"`
}

// UpdateSessionRequest holds payload for partial session updates.
type UpdateSessionRequest struct {
	TutorID       *string               `json:"tutorId"`
	Subject       *string               `json:"subject"`
	ScheduledDate *time.Time            `json:"scheduledDate"`
	Duration      *string               `json:"duration"`
	Status        *models.SessionStatus `json:"status" validate:"omitempty,oneof=scheduled completed cancelled in_progress"`
	Notes         *string               `json:"notes"`
}

// SessionService handles tutoring session use-cases.
type SessionService struct {
	repo      sessionRepository
	tutors    tutorFinder
	users     userFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSessionService constructs the session service.
func NewSessionService(repo sessionRepository, tutors tutorFinder, users userFinder, validate *validator.Validate, logger *zap.Logger) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{repo: repo, tutors: tutors, users: users, validator: validate, logger: logger}
}

// List returns the actor's sessions, or every session for admins,
// newest first, with tutor and student attached.
func (s *SessionService) List(ctx context.Context, actor Actor) ([]models.TutoringSessionDetail, error) {
	var (
		sessions []models.TutoringSession
		err      error
	)
	if actor.IsAdmin() {
		sessions, err = s.repo.ListAll(ctx)
	} else {
		sessions, err = s.repo.ListByStudent(ctx, actor.UserID)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch sessions")
	}
	return s.hydrate(ctx, sessions)
}

// ListAll returns every session with relations, for the admin view.
func (s *SessionService) ListAll(ctx context.Context) ([]models.TutoringSessionDetail, error) {
	sessions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch sessions")
	}
	return s.hydrate(ctx, sessions)
}

// Upcoming returns the actor's future scheduled sessions, soonest first.
func (s *SessionService) Upcoming(ctx context.Context, actor Actor) ([]models.TutoringSessionDetail, error) {
	sessions, err := s.repo.ListUpcoming(ctx, actor.UserID, time.Now().UTC())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch upcoming sessions")
	}
	return s.hydrate(ctx, sessions)
}

// Stats aggregates the actor's sessions at the store.
func (s *SessionService) Stats(ctx context.Context, actor Actor) (*models.StudentSessionStats, error) {
	stats, err := s.repo.StudentStats(ctx, actor.UserID, time.Now().UTC())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch session stats")
	}
	return stats, nil
}

// Create books a session for the actor and returns the persisted row.
// A dangling tutor reference fails on the foreign key and surfaces as a
// generic creation failure.
func (s *SessionService) Create(ctx context.Context, actor Actor, req CreateSessionRequest) (*models.TutoringSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to create session")
	}
	status := models.SessionScheduled
	if req.Status != nil {
		status = *req.Status
	}
	session := &models.TutoringSession{
		StudentID:     actor.UserID,
		TutorID:       req.TutorID,
		Subject:       req.Subject,
		ScheduledDate: req.ScheduledDate,
		Duration:      req.Duration,
		Status:        status,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to create session")
	}
	return session, nil
}

// Update applies a partial patch under the ownership rules: admins may
// change every field, the owning student only status and notes. Fields
// outside the owner's allowance are dropped before validation.
func (s *SessionService) Update(ctx context.Context, id string, actor Actor, req UpdateSessionRequest) (*models.TutoringSession, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update session")
	}

	if !actor.IsAdmin() && !actor.Owns(existing.StudentID) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "Forbidden: You can only update your own sessions")
	}
	if !actor.IsAdmin() {
		req = UpdateSessionRequest{Status: req.Status, Notes: req.Notes}
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to update session")
	}

	patch := models.SessionPatch{
		TutorID:       req.TutorID,
		Subject:       req.Subject,
		ScheduledDate: req.ScheduledDate,
		Duration:      req.Duration,
		Status:        req.Status,
		Notes:         req.Notes,
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Failed to update session")
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update session")
	}
	return updated, nil
}

// hydrate attaches tutor and student records to each session, fanning
// the lookups out across rows.
func (s *SessionService) hydrate(ctx context.Context, sessions []models.TutoringSession) ([]models.TutoringSessionDetail, error) {
	details := make([]models.TutoringSessionDetail, len(sessions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hydrationConcurrency)
	for i, session := range sessions {
		i, session := i, session
		g.Go(func() error {
			detail := models.TutoringSessionDetail{TutoringSession: session}
			tutor, err := lookupTutor(gctx, s.tutors, session.TutorID)
			if err != nil {
				return err
			}
			detail.Tutor = tutor
			student, err := lookupUser(gctx, s.users, session.StudentID)
			if err != nil {
				return err
			}
			detail.Student = student
			details[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch sessions")
	}
	return details, nil
}
