package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/student-analytics-api/pkg/errors"
	"github.com/noah-isme/student-analytics-api/pkg/export"
)

func newExportServiceForTest(records int) *ExportService {
	pages := newRecordService(&memoryRecordRepo{records: seedRecords(records)})
	return NewExportService(pages, zap.NewNop(), export.NewCSVExporter(), export.NewPDFExporter())
}

func TestExportServiceCSV(t *testing.T) {
	svc := newExportServiceForTest(30)

	file, err := svc.ExportPage(context.Background(), 2, 10, ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "student-records-page-2.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Body)), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "id,StudyHours,Attendance,AssignmentCompletion,ExamScore,FinalGrade,Cluster,Level", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "11,"))
}

func TestExportServicePDF(t *testing.T) {
	svc := newExportServiceForTest(5)

	file, err := svc.ExportPage(context.Background(), 1, 50, ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Body, []byte("%PDF-")))
}

func TestExportServicePropagatesPagingErrors(t *testing.T) {
	svc := newExportServiceForTest(5)

	_, err := svc.ExportPage(context.Background(), 0, 50, ExportFormatCSV)
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument)
}

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat("")
	require.NoError(t, err)
	assert.Equal(t, ExportFormatCSV, f)

	f, err = ParseExportFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, ExportFormatPDF, f)

	_, err = ParseExportFormat("xlsx")
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument)
}
