package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

type fakeFeedbackRepo struct {
	rows      map[string]*models.Feedback
	lastPatch models.FeedbackPatch
	stats     *models.FeedbackStats
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{rows: map[string]*models.Feedback{}}
}

func (f *fakeFeedbackRepo) ListAll(ctx context.Context) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, row := range f.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (f *fakeFeedbackRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, row := range f.rows {
		if row.StudentID == studentID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) FindByID(ctx context.Context, id string) (*models.Feedback, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	dup := *row
	return &dup, nil
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = "f-new"
	}
	if feedback.Status == "" {
		feedback.Status = models.FeedbackPending
	}
	f.rows[feedback.ID] = feedback
	return nil
}

func (f *fakeFeedbackRepo) Update(ctx context.Context, id string, patch models.FeedbackPatch) error {
	f.lastPatch = patch
	row := f.rows[id]
	if patch.Status != nil {
		row.Status = *patch.Status
	}
	if patch.AdminResponse != nil {
		row.AdminResponse = patch.AdminResponse
	}
	return nil
}

func (f *fakeFeedbackRepo) Delete(ctx context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeFeedbackRepo) Stats(ctx context.Context) (*models.FeedbackStats, error) {
	return f.stats, nil
}

func newTestFeedbackService(repo *fakeFeedbackRepo, users *fakeUserRepo) *FeedbackService {
	return NewFeedbackService(repo, users, validator.New(), zap.NewNop())
}

func TestFeedbackServiceCreateDefaultsPending(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := newTestFeedbackService(repo, newFakeUserRepo())

	row, err := svc.Create(context.Background(), Actor{UserID: "stu-1", Role: models.RoleStudent}, CreateFeedbackRequest{
		Subject: "Great session",
		Message: "Really helped me with calculus.",
	})
	require.NoError(t, err)
	assert.Equal(t, "stu-1", row.StudentID)
	assert.Equal(t, models.FeedbackPending, row.Status)
	assert.Nil(t, row.AdminResponse)
}

func TestFeedbackServiceCreateRequiresSubjectAndMessage(t *testing.T) {
	svc := newTestFeedbackService(newFakeFeedbackRepo(), newFakeUserRepo())

	_, err := svc.Create(context.Background(), Actor{UserID: "stu-1", Role: models.RoleStudent}, CreateFeedbackRequest{Subject: "x"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
}

func TestFeedbackServiceListScopedByRole(t *testing.T) {
	repo := newFakeFeedbackRepo()
	repo.rows["f1"] = &models.Feedback{ID: "f1", StudentID: "stu-1", Subject: "a", Message: "m", Status: models.FeedbackPending}
	repo.rows["f2"] = &models.Feedback{ID: "f2", StudentID: "stu-2", Subject: "b", Message: "m", Status: models.FeedbackPending}
	svc := newTestFeedbackService(repo, newFakeUserRepo())

	own, err := svc.List(context.Background(), Actor{UserID: "stu-1", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.List(context.Background(), Actor{UserID: "adm-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFeedbackServiceGetForbiddenForOtherStudent(t *testing.T) {
	repo := newFakeFeedbackRepo()
	repo.rows["f1"] = &models.Feedback{ID: "f1", StudentID: "stu-1", Subject: "a", Message: "m"}
	svc := newTestFeedbackService(repo, newFakeUserRepo())

	_, err := svc.Get(context.Background(), "f1", Actor{UserID: "stu-2", Role: models.RoleStudent})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 403, appErr.Status)

	row, err := svc.Get(context.Background(), "f1", Actor{UserID: "adm-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "f1", row.ID)
}

func TestFeedbackServiceUpdateTriage(t *testing.T) {
	repo := newFakeFeedbackRepo()
	repo.rows["f1"] = &models.Feedback{ID: "f1", StudentID: "stu-1", Subject: "a", Message: "m", Status: models.FeedbackPending}
	svc := newTestFeedbackService(repo, newFakeUserRepo())

	status := models.FeedbackResolved
	resp := "Thanks, fixed."
	updated, err := svc.Update(context.Background(), "f1", UpdateFeedbackRequest{Status: &status, AdminResponse: &resp})
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackResolved, updated.Status)
	require.NotNil(t, updated.AdminResponse)
	assert.Equal(t, "Thanks, fixed.", *updated.AdminResponse)
}

func TestFeedbackServiceUpdateNotFound(t *testing.T) {
	svc := newTestFeedbackService(newFakeFeedbackRepo(), newFakeUserRepo())

	_, err := svc.Update(context.Background(), "ghost", UpdateFeedbackRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Feedback not found", appErr.Message)
}

func TestFeedbackServiceUpdateRejectsUnknownStatus(t *testing.T) {
	repo := newFakeFeedbackRepo()
	repo.rows["f1"] = &models.Feedback{ID: "f1", StudentID: "stu-1", Subject: "a", Message: "m"}
	svc := newTestFeedbackService(repo, newFakeUserRepo())

	bad := models.FeedbackStatus("ignored")
	_, err := svc.Update(context.Background(), "f1", UpdateFeedbackRequest{Status: &bad})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
}

func TestFeedbackServiceStatsPassthrough(t *testing.T) {
	repo := newFakeFeedbackRepo()
	repo.stats = &models.FeedbackStats{Total: 4, Pending: 2, Reviewed: 1, Resolved: 1}
	svc := newTestFeedbackService(repo, newFakeUserRepo())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Pending)
}
