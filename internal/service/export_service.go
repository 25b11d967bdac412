package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tutorhub/tutorhub-api/internal/models"
	appErrors "github.com/tutorhub/tutorhub-api/pkg/errors"
	"github.com/tutorhub/tutorhub-api/pkg/export"
)

// ExportFormat enumerates supported export encodings.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

type exportSessionLister interface {
	ListAll(ctx context.Context) ([]models.TutoringSessionDetail, error)
}

type exportUserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// ExportResult carries rendered bytes plus the metadata a download
// response needs.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders admin reports as downloadable files.
type ExportService struct {
	sessions exportSessionLister
	users    exportUserLister
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(sessions exportSessionLister, users exportUserLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		sessions: sessions,
		users:    users,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// Sessions exports every tutoring session in the requested format.
func (s *ExportService) Sessions(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	details, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Headers: []string{"Student", "Tutor", "Subject", "Scheduled Date", "Duration", "Status"},
	}
	for _, d := range details {
		data.Rows = append(data.Rows, map[string]string{
			"Student":        userDisplayName(d.Student),
			"Tutor":          tutorDisplayName(d.Tutor),
			"Subject":        d.Subject,
			"Scheduled Date": d.ScheduledDate.Format(time.RFC3339),
			"Duration":       d.Duration,
			"Status":         string(d.Status),
		})
	}
	return s.render(data, format, "sessions", "Tutoring Sessions")
}

// Students exports every student account in the requested format.
func (s *ExportService) Students(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Headers: []string{"Name", "Email", "Role", "Joined"},
	}
	for i := range users {
		u := users[i]
		if u.Role != models.RoleStudent {
			continue
		}
		data.Rows = append(data.Rows, map[string]string{
			"Name":   userDisplayName(&u),
			"Email":  derefString(u.Email),
			"Role":   string(u.Role),
			"Joined": u.CreatedAt.Format("2006-01-02"),
		})
	}
	return s.render(data, format, "students", "Students")
}

func (s *ExportService) render(data export.Dataset, format ExportFormat, name, title string) (*ExportResult, error) {
	stamp := time.Now().Format("20060102")
	switch format {
	case ExportCSV:
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to generate export")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("%s_%s.csv", name, stamp),
		}, nil
	case ExportPDF:
		content, err := s.pdf.Render(data, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to generate export")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("%s_%s.pdf", name, stamp),
		}, nil
	default:
		return nil, appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid format. Must be 'csv' or 'pdf'")
	}
}

func userDisplayName(u *models.User) string {
	if u == nil {
		return "Unknown"
	}
	name := strings.TrimSpace(strings.Join([]string{derefString(u.FirstName), derefString(u.LastName)}, " "))
	if name == "" {
		return derefString(u.Email)
	}
	return name
}

func tutorDisplayName(t *models.Tutor) string {
	if t == nil {
		return "Unknown"
	}
	return t.Name
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
