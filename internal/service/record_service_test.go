package service

import (
	"context"
	"math"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/student-analytics-api/internal/models"
	appErrors "github.com/noah-isme/student-analytics-api/pkg/errors"
)

// memoryRecordRepo serves an in-memory table already ordered by id.
type memoryRecordRepo struct {
	records    []models.StudentRecord
	countErr   error
	listErr    error
	pingErr    error
	countCalls int
	listCalls  int
	lastLimit  int
	lastOffset int
}

func (m *memoryRecordRepo) Count(context.Context) (int, error) {
	m.countCalls++
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.records), nil
}

func (m *memoryRecordRepo) List(_ context.Context, limit, offset int) ([]models.StudentRecord, error) {
	m.listCalls++
	m.lastLimit, m.lastOffset = limit, offset
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.StudentRecord{}
	if offset >= len(m.records) {
		return out, nil
	}
	end := offset + limit
	if end > len(m.records) {
		end = len(m.records)
	}
	return append(out, m.records[offset:end]...), nil
}

func (m *memoryRecordRepo) Ping(context.Context) error {
	return m.pingErr
}

func seedRecords(n int) []models.StudentRecord {
	records := make([]models.StudentRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, models.StudentRecord{ID: int64(i), StudyHours: float64(i % 30), ExamScore: 50 + float64(i%50)})
	}
	return records
}

func newRecordService(repo *memoryRecordRepo) *RecordService {
	return NewRecordService(repo, validator.New(), NewMetricsService(), zap.NewNop())
}

func TestRecordServicePageReconstructsTable(t *testing.T) {
	repo := &memoryRecordRepo{records: seedRecords(237)}
	svc := newRecordService(repo)
	ctx := context.Background()

	for _, size := range []int{1, 7, 50, 100} {
		first, err := svc.Page(ctx, 1, size)
		require.NoError(t, err)
		require.Equal(t, 237, first.Total)

		var seen []int64
		for page := 1; page <= first.TotalPages; page++ {
			result, err := svc.Page(ctx, page, size)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(result.Data), size)
			for _, rec := range result.Data {
				seen = append(seen, rec.ID)
			}
		}
		require.Len(t, seen, 237, "pageSize=%d", size)
		for i, id := range seen {
			assert.Equal(t, int64(i+1), id)
		}
	}
}

func TestRecordServicePageClampsPageSize(t *testing.T) {
	repo := &memoryRecordRepo{records: seedRecords(250)}
	svc := newRecordService(repo)

	result, err := svc.Page(context.Background(), 2, 500)
	require.NoError(t, err)
	assert.Equal(t, 100, result.PageSize)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Data, 100)
	assert.Equal(t, 100, repo.lastLimit)
	assert.Equal(t, 100, repo.lastOffset)
	assert.Equal(t, int64(101), result.Data[0].ID)
}

func TestRecordServicePageRejectsInvalidArguments(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		pageSize int
	}{
		{"zero page", 0, 50},
		{"negative page", -3, 50},
		{"zero page size", 1, 0},
		{"negative page size", 1, -10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memoryRecordRepo{records: seedRecords(5)}
			svc := newRecordService(repo)

			_, err := svc.Page(context.Background(), tc.page, tc.pageSize)
			require.Error(t, err)
			assert.ErrorIs(t, err, appErrors.ErrInvalidArgument)
			assert.Equal(t, 400, appErrors.FromError(err).Status)
			assert.Zero(t, repo.countCalls)
			assert.Zero(t, repo.listCalls)
		})
	}
}

func TestRecordServicePageBeyondEnd(t *testing.T) {
	svc := newRecordService(&memoryRecordRepo{records: seedRecords(10)})

	result, err := svc.Page(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalPages)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
}

func TestRecordServicePageHugePageNumberSkipsStore(t *testing.T) {
	repo := &memoryRecordRepo{records: seedRecords(200)}
	svc := newRecordService(repo)

	for _, page := range []int{math.MaxInt/50 + 2, math.MaxInt/100 + 1, math.MaxInt} {
		result, err := svc.Page(context.Background(), page, 100)
		require.NoError(t, err)
		assert.Equal(t, page, result.Page)
		assert.Equal(t, 200, result.Total)
		assert.Equal(t, 2, result.TotalPages)
		assert.NotNil(t, result.Data)
		assert.Empty(t, result.Data, "page %d", page)
	}
	assert.Zero(t, repo.listCalls)
}

func TestRecordServicePageEmptyTable(t *testing.T) {
	svc := newRecordService(&memoryRecordRepo{})

	result, err := svc.Page(context.Background(), 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.TotalPages)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
}

func TestRecordServicePageStoreError(t *testing.T) {
	repo := &memoryRecordRepo{countErr: assert.AnError}
	svc := newRecordService(repo)

	_, err := svc.Page(context.Background(), 1, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrStore)
	assert.ErrorIs(t, err, assert.AnError)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Failed to fetch paginated data", appErr.Summary)
	assert.Zero(t, repo.listCalls)
}

func TestRecordServicePreview(t *testing.T) {
	repo := &memoryRecordRepo{records: seedRecords(80)}
	svc := newRecordService(repo)

	records, err := svc.Preview(context.Background())
	require.NoError(t, err)
	require.Len(t, records, PreviewSize)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, int64(50), records[49].ID)
	assert.Equal(t, 0, repo.lastOffset)
}

func TestRecordServicePreviewError(t *testing.T) {
	svc := newRecordService(&memoryRecordRepo{listErr: assert.AnError})

	_, err := svc.Preview(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch preview data", appErrors.FromError(err).Summary)
}

func TestRecordServiceReady(t *testing.T) {
	assert.NoError(t, newRecordService(&memoryRecordRepo{}).Ready(context.Background()))

	err := newRecordService(&memoryRecordRepo{pingErr: assert.AnError}).Ready(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrStore)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 50))
	assert.Equal(t, 1, TotalPages(1, 50))
	assert.Equal(t, 1, TotalPages(50, 50))
	assert.Equal(t, 2, TotalPages(51, 50))
	assert.Equal(t, 10, TotalPages(1000, 100))
}
