package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateRole(ctx context.Context, id string, role models.UserRole) error
	CountByRole(ctx context.Context, role models.UserRole) (int, error)
}

type sessionCounter interface {
	Count(ctx context.Context) (int, error)
	CountScheduledBetween(ctx context.Context, start, end time.Time) (int, error)
}

type tutorCounter interface {
	Count(ctx context.Context) (int, error)
}

// UpdateRoleRequest holds payload for changing a user's role.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UserService handles account administration use-cases.
type UserService struct {
	users    userRepository
	tutors   tutorCounter
	sessions sessionCounter
	logger   *zap.Logger
}

// NewUserService constructs the user service.
func NewUserService(users userRepository, tutors tutorCounter, sessions sessionCounter, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, tutors: tutors, sessions: sessions, logger: logger}
}

// List returns every account, newest first.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch users")
	}
	return users, nil
}

// UpdateRole changes an account's role. The role value is checked
// before any lookup or write.
func (s *UserService) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*models.User, error) {
	role := models.UserRole(req.Role)
	if !role.Valid() {
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid role. Must be 'student' or 'admin'")
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "User not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update user role")
	}

	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update user role")
	}

	updated, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to update user role")
	}
	return updated, nil
}

// AdminStats assembles the platform dashboard counters. The sessions
// today window runs midnight to midnight in server local time.
func (s *UserService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	students, err := s.users.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, s.statsErr(err, "count students")
	}
	tutors, err := s.tutors.Count(ctx)
	if err != nil {
		return nil, s.statsErr(err, "count tutors")
	}
	totalSessions, err := s.sessions.Count(ctx)
	if err != nil {
		return nil, s.statsErr(err, "count sessions")
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)
	today, err := s.sessions.CountScheduledBetween(ctx, start, end)
	if err != nil {
		return nil, s.statsErr(err, "count sessions today")
	}

	return &models.AdminStats{
		TotalStudents: students,
		TotalTutors:   tutors,
		TotalSessions: totalSessions,
		SessionsToday: today,
	}, nil
}

func (s *UserService) statsErr(err error, op string) *appErrors.Error {
	return appErrors.Wrap(fmt.Errorf("%s: %w", op, err), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch admin stats")
}
