package service

import (
	"context"
	"database/sql"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/student-analytics-api/internal/models"
	appErrors "github.com/noah-isme/student-analytics-api/pkg/errors"
)

// AnalyticsRepository describes the grouped queries required by AnalyticsService.
type AnalyticsRepository interface {
	ClusterAggregates(ctx context.Context) ([]models.ClusterAggregate, error)
	LevelAggregates(ctx context.Context) ([]models.LevelAggregate, error)
	BucketAggregates(ctx context.Context) ([]models.BucketAggregate, error)
}

// AnalyticsService computes the dashboard aggregates. Every call scans the whole table.
type AnalyticsService struct {
	repo    AnalyticsRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewAnalyticsService constructs an analytics service.
func NewAnalyticsService(repo AnalyticsRepository, metrics *MetricsService, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{repo: repo, metrics: metrics, logger: logger}
}

// ClusterSummary returns the average exam score and row count per cluster, ordered by cluster.
func (s *AnalyticsService) ClusterSummary(ctx context.Context) ([]models.ClusterSummary, error) {
	start := time.Now()
	rows, err := s.repo.ClusterAggregates(ctx)
	s.metrics.ObserveDBQuery("analytics_cluster", time.Since(start), err)
	if err != nil {
		s.logger.Error("avg exam by cluster", zap.Error(err))
		return nil, appErrors.WrapAs(appErrors.ErrStore, err, "Failed to fetch analytics data")
	}

	summaries := make([]models.ClusterSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, models.ClusterSummary{
			Cluster:      row.Cluster,
			AvgExamScore: roundScore(row.AvgExamScore),
			Count:        int(row.Count),
		})
	}
	return summaries, nil
}

// LevelDistribution returns the number of records per level, ordered by level.
func (s *AnalyticsService) LevelDistribution(ctx context.Context) ([]models.LevelCount, error) {
	start := time.Now()
	rows, err := s.repo.LevelAggregates(ctx)
	s.metrics.ObserveDBQuery("analytics_level", time.Since(start), err)
	if err != nil {
		s.logger.Error("level distribution", zap.Error(err))
		return nil, appErrors.WrapAs(appErrors.ErrStore, err, "Failed to fetch level distribution")
	}

	counts := make([]models.LevelCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, models.LevelCount{Level: row.Level, Count: int(row.Count)})
	}
	return counts, nil
}

// StudyHoursBuckets returns the average exam score per study-hours bucket in ascending
// bucket order. Buckets without rows are absent.
func (s *AnalyticsService) StudyHoursBuckets(ctx context.Context) ([]models.BucketSummary, error) {
	start := time.Now()
	rows, err := s.repo.BucketAggregates(ctx)
	s.metrics.ObserveDBQuery("analytics_study_hours", time.Since(start), err)
	if err != nil {
		s.logger.Error("study hours buckets", zap.Error(err))
		return nil, appErrors.WrapAs(appErrors.ErrStore, err, "Failed to fetch study hours buckets")
	}

	summaries := make([]models.BucketSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, models.BucketSummary{
			Bucket:       row.Bucket,
			AvgExamScore: roundScore(row.AvgExamScore),
			Count:        int(row.Count),
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return bucketRank(summaries[i].Bucket) < bucketRank(summaries[j].Bucket)
	})
	return summaries, nil
}

// bucketRank orders unknown labels after the known partition.
func bucketRank(label string) int {
	if idx := models.BucketIndex(label); idx >= 0 {
		return idx
	}
	return len(models.StudyHoursBuckets)
}

// roundScore rounds to 2 decimals, half away from zero; NULL and non-finite averages become 0.
func roundScore(avg sql.NullFloat64) float64 {
	if !avg.Valid || math.IsNaN(avg.Float64) || math.IsInf(avg.Float64, 0) {
		return 0
	}
	return math.Round(avg.Float64*100) / 100
}
