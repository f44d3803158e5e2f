package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-analytics-api/internal/models"
	appErrors "github.com/noah-isme/student-analytics-api/pkg/errors"
)

const (
	// DefaultPageSize applies when the client does not send pageSize.
	DefaultPageSize = 50
	// MaxPageSize is the upper clamp for pageSize.
	MaxPageSize = 100
	// PreviewSize is the number of rows returned by Preview.
	PreviewSize = 50
)

type recordRepository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) ([]models.StudentRecord, error)
	Ping(ctx context.Context) error
}

// PageRequest is a validated pagination request.
type PageRequest struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=100"`
}

// RecordService serves paginated and preview views of the student records table.
type RecordService struct {
	repo      recordRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewRecordService constructs the record service.
func NewRecordService(repo recordRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *RecordService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// Page returns one page of records ordered by id. pageSize above MaxPageSize is clamped;
// page or pageSize below 1 is rejected before the store is queried. totalPages is 0 for an
// empty table and pages past the end carry no rows.
func (s *RecordService) Page(ctx context.Context, page, pageSize int) (*models.RecordPage, error) {
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	req := PageRequest{Page: page, PageSize: pageSize}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrInvalidArgument, describeValidation(err), "")
	}

	start := time.Now()
	total, err := s.repo.Count(ctx)
	s.metrics.ObserveDBQuery("records_count", time.Since(start), err)
	if err != nil {
		s.logger.Error("count records", zap.Error(err))
		return nil, appErrors.WrapAs(appErrors.ErrStore, err, "Failed to fetch paginated data")
	}

	result := &models.RecordPage{
		Page:       req.Page,
		PageSize:   req.PageSize,
		Total:      total,
		TotalPages: TotalPages(total, req.PageSize),
		Data:       []models.StudentRecord{},
	}
	// Past the last page nothing is fetched; this also keeps the offset below total.
	if req.Page > result.TotalPages {
		return result, nil
	}

	offset := (req.Page - 1) * req.PageSize
	start = time.Now()
	records, err := s.repo.List(ctx, req.PageSize, offset)
	s.metrics.ObserveDBQuery("records_page", time.Since(start), err)
	if err != nil {
		s.logger.Error("list records", zap.Error(err), zap.Int("page", req.Page), zap.Int("page_size", req.PageSize))
		return nil, appErrors.WrapAs(appErrors.ErrStore, err, "Failed to fetch paginated data")
	}
	result.Data = records
	return result, nil
}

// Preview returns the first PreviewSize records ordered by id.
func (s *RecordService) Preview(ctx context.Context) ([]models.StudentRecord, error) {
	start := time.Now()
	records, err := s.repo.List(ctx, PreviewSize, 0)
	s.metrics.ObserveDBQuery("records_preview", time.Since(start), err)
	if err != nil {
		s.logger.Error("preview records", zap.Error(err))
		return nil, appErrors.WrapAs(appErrors.ErrStore, err, "Failed to fetch preview data")
	}
	return records, nil
}

// Ready reports whether the store accepts connections.
func (s *RecordService) Ready(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return appErrors.WrapAs(appErrors.ErrStore, err, "Database unavailable")
	}
	return nil
}

// TotalPages is ceil(total/pageSize), 0 when the table is empty.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	switch fe.Field() {
	case "Page":
		return fmt.Errorf("page must be at least 1, got %v", fe.Value())
	case "PageSize":
		return fmt.Errorf("pageSize must be between 1 and %d, got %v", MaxPageSize, fe.Value())
	default:
		return err
	}
}
