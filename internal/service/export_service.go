package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/student-analytics-api/internal/models"
	appErrors "github.com/noah-isme/student-analytics-api/pkg/errors"
	"github.com/noah-isme/student-analytics-api/pkg/export"
)

// ExportFormat identifies a rendered table format.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ContentType returns the MIME type for the format.
func (f ExportFormat) ContentType() string {
	if f == ExportFormatPDF {
		return "application/pdf"
	}
	return "text/csv"
}

// ParseExportFormat accepts csv (default when empty) or pdf.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(ExportFormatCSV):
		return ExportFormatCSV, nil
	case string(ExportFormatPDF):
		return ExportFormatPDF, nil
	default:
		return "", appErrors.WrapAs(appErrors.ErrInvalidArgument, fmt.Errorf("unsupported format %q", raw), "Invalid export format")
	}
}

// ExportFile is a rendered page ready to be served as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type pageSource interface {
	Page(ctx context.Context, page, pageSize int) (*models.RecordPage, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders pages of the records table as downloadable files.
type ExportService struct {
	records pageSource
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(records pageSource, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{records: records, csv: csv, pdf: pdf, logger: logger}
}

// ExportPage renders one page of records in the requested format. Paging rules match
// RecordService.Page.
func (s *ExportService) ExportPage(ctx context.Context, page, pageSize int, format ExportFormat) (*ExportFile, error) {
	result, err := s.records.Page(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	dataset := recordsDataset(result.Data)
	var body []byte
	switch format {
	case ExportFormatPDF:
		title := fmt.Sprintf("Student records - page %d of %d", result.Page, result.TotalPages)
		body, err = s.pdf.Render(dataset, title)
	default:
		format = ExportFormatCSV
		body, err = s.csv.Render(dataset)
	}
	if err != nil {
		s.logger.Error("render export", zap.Error(err), zap.String("format", string(format)))
		return nil, appErrors.WrapAs(appErrors.ErrInternal, err, "Failed to render export")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("student-records-page-%d.%s", result.Page, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func recordsDataset(records []models.StudentRecord) export.Dataset {
	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, map[string]string{
			"id":                   strconv.FormatInt(rec.ID, 10),
			"StudyHours":           formatNumber(rec.StudyHours),
			"Attendance":           formatNumber(rec.Attendance),
			"AssignmentCompletion": formatNumber(rec.AssignmentCompletion),
			"ExamScore":            formatNumber(rec.ExamScore),
			"FinalGrade":           rec.FinalGrade,
			"Cluster":              strconv.Itoa(rec.Cluster),
			"Level":                rec.Level,
		})
	}
	return export.Dataset{Headers: models.RecordColumns, Rows: rows}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
