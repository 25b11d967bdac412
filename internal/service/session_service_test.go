package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

type fakeSessionRepo struct {
	sessions    map[string]*models.TutoringSession
	lastPatch   models.SessionPatch
	lastPatchID string
	stats       *models.StudentSessionStats
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*models.TutoringSession{}}
}

func (f *fakeSessionRepo) ListAll(ctx context.Context) ([]models.TutoringSession, error) {
	var out []models.TutoringSession
	for _, s := range f.sessions {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByStudent(ctx context.Context, studentID string) ([]models.TutoringSession, error) {
	var out []models.TutoringSession
	for _, s := range f.sessions {
		if s.StudentID == studentID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListUpcoming(ctx context.Context, studentID string, now time.Time) ([]models.TutoringSession, error) {
	var out []models.TutoringSession
	for _, s := range f.sessions {
		if s.StudentID == studentID && s.Status == models.SessionScheduled && !s.ScheduledDate.Before(now) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) FindByID(ctx context.Context, id string) (*models.TutoringSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	dup := *s
	return &dup, nil
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *models.TutoringSession) error {
	if session.ID == "" {
		session.ID = "s-new"
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, id string, patch models.SessionPatch) error {
	f.lastPatchID = id
	f.lastPatch = patch
	s := f.sessions[id]
	if patch.TutorID != nil {
		s.TutorID = *patch.TutorID
	}
	if patch.Subject != nil {
		s.Subject = *patch.Subject
	}
	if patch.Status != nil {
		s.Status = *patch.Status
	}
	if patch.Notes != nil {
		s.Notes = patch.Notes
	}
	return nil
}

func (f *fakeSessionRepo) StudentStats(ctx context.Context, studentID string, now time.Time) (*models.StudentSessionStats, error) {
	return f.stats, nil
}

type fakeTutorFinder struct {
	tutors map[string]*models.Tutor
}

func (f *fakeTutorFinder) FindByID(ctx context.Context, id string) (*models.Tutor, error) {
	t, ok := f.tutors[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return t, nil
}

func newTestSessionService(repo *fakeSessionRepo, tutors *fakeTutorFinder, users *fakeUserRepo) *SessionService {
	return NewSessionService(repo, tutors, users, validator.New(), zap.NewNop())
}

func seedSession(repo *fakeSessionRepo, id, studentID, tutorID string) {
	repo.sessions[id] = &models.TutoringSession{
		ID:            id,
		StudentID:     studentID,
		TutorID:       tutorID,
		Subject:       "Math",
		ScheduledDate: time.Now().Add(24 * time.Hour),
		Duration:      "60",
		Status:        models.SessionScheduled,
	}
}

func TestSessionServiceListScopedByRole(t *testing.T) {
	repo := newFakeSessionRepo()
	seedSession(repo, "s1", "stu-1", "tut-1")
	seedSession(repo, "s2", "stu-2", "tut-1")
	svc := newTestSessionService(repo, &fakeTutorFinder{}, newFakeUserRepo())

	own, err := svc.List(context.Background(), Actor{UserID: "stu-1", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.List(context.Background(), Actor{UserID: "adm-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSessionServiceHydrationNullsMissingRelations(t *testing.T) {
	repo := newFakeSessionRepo()
	seedSession(repo, "s1", "stu-1", "tut-gone")
	users := newFakeUserRepo()
	tutors := &fakeTutorFinder{tutors: map[string]*models.Tutor{}}
	svc := newTestSessionService(repo, tutors, users)

	details, err := svc.List(context.Background(), Actor{UserID: "stu-1", Role: models.RoleStudent})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Nil(t, details[0].Tutor)
	assert.Nil(t, details[0].Student)
}

func TestSessionServiceHydrationAttachesRelations(t *testing.T) {
	repo := newFakeSessionRepo()
	seedSession(repo, "s1", "stu-1", "tut-1")
	users := newFakeUserRepo()
	users.add(&models.User{ID: "stu-1", Role: models.RoleStudent})
	tutors := &fakeTutorFinder{tutors: map[string]*models.Tutor{"tut-1": {ID: "tut-1", Name: "Tutor One"}}}
	svc := newTestSessionService(repo, tutors, users)

	details, err := svc.List(context.Background(), Actor{UserID: "stu-1", Role: models.RoleStudent})
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.NotNil(t, details[0].Tutor)
	assert.Equal(t, "Tutor One", details[0].Tutor.Name)
	require.NotNil(t, details[0].Student)
	assert.Equal(t, "stu-1", details[0].Student.ID)
}

func TestSessionServiceCreateForcesStudent(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestSessionService(repo, &fakeTutorFinder{}, newFakeUserRepo())

	session, err := svc.Create(context.Background(), Actor{UserID: "stu-1", Role: models.RoleStudent}, CreateSessionRequest{
		TutorID:       "tut-1",
		Subject:       "Physics",
		ScheduledDate: time.Now().Add(48 * time.Hour),
		Duration:      "90",
	})
	require.NoError(t, err)
	assert.Equal(t, "stu-1", session.StudentID)
	assert.Equal(t, models.SessionScheduled, session.Status)
}

func TestSessionServiceCreateValidatesPayload(t *testing.T) {
	svc := newTestSessionService(newFakeSessionRepo(), &fakeTutorFinder{}, newFakeUserRepo())

	_, err := svc.Create(context.Background(), Actor{UserID: "stu-1", Role: models.RoleStudent}, CreateSessionRequest{Subject: "Physics"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Failed to create session", appErr.Message)
}

func TestSessionServiceUpdateNotFound(t *testing.T) {
	svc := newTestSessionService(newFakeSessionRepo(), &fakeTutorFinder{}, newFakeUserRepo())

	_, err := svc.Update(context.Background(), "ghost", Actor{UserID: "stu-1", Role: models.RoleStudent}, UpdateSessionRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Session not found", appErr.Message)
}

func TestSessionServiceUpdateForbiddenForOtherStudent(t *testing.T) {
	repo := newFakeSessionRepo()
	seedSession(repo, "s1", "stu-1", "tut-1")
	svc := newTestSessionService(repo, &fakeTutorFinder{}, newFakeUserRepo())

	status := models.SessionCancelled
	_, err := svc.Update(context.Background(), "s1", Actor{UserID: "stu-2", Role: models.RoleStudent}, UpdateSessionRequest{Status: &status})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 403, appErr.Status)
	assert.Equal(t, "Forbidden: You can only update your own sessions", appErr.Message)
}

func TestSessionServiceOwnerPatchRestrictedToStatusAndNotes(t *testing.T) {
	repo := newFakeSessionRepo()
	seedSession(repo, "s1", "stu-1", "tut-1")
	svc := newTestSessionService(repo, &fakeTutorFinder{}, newFakeUserRepo())

	otherTutor := "tut-2"
	status := models.SessionCancelled
	notes := "cannot make it"
	updated, err := svc.Update(context.Background(), "s1", Actor{UserID: "stu-1", Role: models.RoleStudent}, UpdateSessionRequest{
		TutorID: &otherTutor,
		Status:  &status,
		Notes:   &notes,
	})
	require.NoError(t, err)

	assert.Nil(t, repo.lastPatch.TutorID)
	assert.Equal(t, "tut-1", updated.TutorID)
	assert.Equal(t, models.SessionCancelled, updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "cannot make it", *updated.Notes)
}

func TestSessionServiceAdminPatchMovesSession(t *testing.T) {
	repo := newFakeSessionRepo()
	seedSession(repo, "s1", "stu-1", "tut-1")
	svc := newTestSessionService(repo, &fakeTutorFinder{}, newFakeUserRepo())

	otherTutor := "tut-2"
	updated, err := svc.Update(context.Background(), "s1", Actor{UserID: "adm-1", Role: models.RoleAdmin}, UpdateSessionRequest{TutorID: &otherTutor})
	require.NoError(t, err)
	assert.Equal(t, "tut-2", updated.TutorID)
}

func TestSessionServiceUpdateRejectsUnknownStatus(t *testing.T) {
	repo := newFakeSessionRepo()
	seedSession(repo, "s1", "stu-1", "tut-1")
	svc := newTestSessionService(repo, &fakeTutorFinder{}, newFakeUserRepo())

	bad := models.SessionStatus("postponed")
	_, err := svc.Update(context.Background(), "s1", Actor{UserID: "stu-1", Role: models.RoleStudent}, UpdateSessionRequest{Status: &bad})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
}

func TestSessionServiceStatsPassthrough(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.stats = &models.StudentSessionStats{TotalSessions: 3, CompletedSessions: 1, UpcomingSessions: 1}
	svc := newTestSessionService(repo, &fakeTutorFinder{}, newFakeUserRepo())

	stats, err := svc.Stats(context.Background(), Actor{UserID: "stu-1", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 1, stats.CompletedSessions)
	assert.Equal(t, 1, stats.UpcomingSessions)
}

func TestSessionServiceUpcomingFiltersByDateAndStatus(t *testing.T) {
	repo := newFakeSessionRepo()
	seedSession(repo, "future", "stu-1", "tut-1")
	past := &models.TutoringSession{
		ID:            "past",
		StudentID:     "stu-1",
		TutorID:       "tut-1",
		Subject:       "Math",
		ScheduledDate: time.Now().Add(-24 * time.Hour),
		Duration:      "60",
		Status:        models.SessionScheduled,
	}
	repo.sessions["past"] = past
	svc := newTestSessionService(repo, &fakeTutorFinder{}, newFakeUserRepo())

	upcoming, err := svc.Upcoming(context.Background(), Actor{UserID: "stu-1", Role: models.RoleStudent})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "future", upcoming[0].ID)
}
