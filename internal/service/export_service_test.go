package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
)

type fakeExportSessions struct {
	details []models.TutoringSessionDetail
}

func (f *fakeExportSessions) ListAll(ctx context.Context) ([]models.TutoringSessionDetail, error) {
	return f.details, nil
}

type fakeExportUsers struct {
	users []models.User
}

func (f *fakeExportUsers) List(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func strptr(s string) *string { return &s }

func TestExportServiceSessionsCSV(t *testing.T) {
	first := "Ada"
	last := "Lovelace"
	sessions := &fakeExportSessions{details: []models.TutoringSessionDetail{
		{
			TutoringSession: models.TutoringSession{
				Subject:       "Math",
				ScheduledDate: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
				Duration:      "60",
				Status:        models.SessionScheduled,
			},
			Tutor:   &models.Tutor{Name: "Tutor One"},
			Student: &models.User{FirstName: &first, LastName: &last},
		},
	}}
	svc := NewExportService(sessions, &fakeExportUsers{}, zap.NewNop())

	result, err := svc.Sessions(context.Background(), ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	body := string(result.Content)
	assert.Contains(t, body, "Student,Tutor,Subject,Scheduled Date,Duration,Status")
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "Tutor One")
	assert.Contains(t, body, "scheduled")
}

func TestExportServiceSessionsHandlesMissingRelations(t *testing.T) {
	sessions := &fakeExportSessions{details: []models.TutoringSessionDetail{
		{TutoringSession: models.TutoringSession{Subject: "Math", Duration: "60", Status: models.SessionCancelled}},
	}}
	svc := NewExportService(sessions, &fakeExportUsers{}, zap.NewNop())

	result, err := svc.Sessions(context.Background(), ExportCSV)
	require.NoError(t, err)
	assert.Contains(t, string(result.Content), "Unknown")
}

func TestExportServiceStudentsFiltersAdmins(t *testing.T) {
	users := &fakeExportUsers{users: []models.User{
		{ID: "u1", Email: strptr("student@example.com"), Role: models.RoleStudent},
		{ID: "u2", Email: strptr("admin@example.com"), Role: models.RoleAdmin},
	}}
	svc := NewExportService(&fakeExportSessions{}, users, zap.NewNop())

	result, err := svc.Students(context.Background(), ExportCSV)
	require.NoError(t, err)
	body := string(result.Content)
	assert.Contains(t, body, "student@example.com")
	assert.NotContains(t, body, "admin@example.com")
}

func TestExportServiceSessionsPDF(t *testing.T) {
	svc := NewExportService(&fakeExportSessions{}, &fakeExportUsers{}, zap.NewNop())

	result, err := svc.Sessions(context.Background(), ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, bytes.HasPrefix(result.Content, []byte("%PDF")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(&fakeExportSessions{}, &fakeExportUsers{}, zap.NewNop())

	_, err := svc.Sessions(context.Background(), ExportFormat("xlsx"))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Invalid format. Must be 'csv' or 'pdf'", appErr.Message)
}
