package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-analytics-api/internal/models"
	"github.com/noah-isme/student-analytics-api/pkg/response"
)

type analyticsService interface {
	ClusterSummary(ctx context.Context) ([]models.ClusterSummary, error)
	LevelDistribution(ctx context.Context) ([]models.LevelCount, error)
	StudyHoursBuckets(ctx context.Context) ([]models.BucketSummary, error)
}

// AnalyticsHandler exposes the chart aggregates.
type AnalyticsHandler struct {
	analytics analyticsService
}

// NewAnalyticsHandler constructs the analytics handler.
func NewAnalyticsHandler(analytics analyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// AvgExamByCluster godoc
// @Summary Average exam score per cluster
// @Tags Analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.ErrorBody
// @Router /api/analytics/avg-exam-by-cluster [get]
func (h *AnalyticsHandler) AvgExamByCluster(c *gin.Context) {
	data, err := h.analytics.ClusterSummary(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"data": data})
}

// LevelDistribution godoc
// @Summary Record count per level
// @Tags Analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.ErrorBody
// @Router /api/analytics/level-distribution [get]
func (h *AnalyticsHandler) LevelDistribution(c *gin.Context) {
	data, err := h.analytics.LevelDistribution(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"data": data})
}

// StudyHoursBuckets godoc
// @Summary Average exam score per study-hours bucket
// @Tags Analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.ErrorBody
// @Router /api/analytics/study-hours-buckets [get]
func (h *AnalyticsHandler) StudyHoursBuckets(c *gin.Context) {
	data, err := h.analytics.StudyHoursBuckets(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"data": data})
}
