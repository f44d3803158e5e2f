package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-analytics-api/internal/service"
	appErrors "github.com/noah-isme/student-analytics-api/pkg/errors"
	"github.com/noah-isme/student-analytics-api/pkg/response"
)

const readyTimeout = 2 * time.Second

type readinessChecker interface {
	Ready(ctx context.Context) error
}

// HealthHandler exposes liveness, readiness and Prometheus endpoints.
type HealthHandler struct {
	store   readinessChecker
	metrics *service.MetricsService
	now     func() time.Time
}

// NewHealthHandler constructs a health handler.
func NewHealthHandler(store readinessChecker, metrics *service.MetricsService) *HealthHandler {
	return &HealthHandler{store: store, metrics: metrics, now: time.Now}
}

// Health responds with a liveness payload.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": h.now().UTC().Format(time.RFC3339Nano)})
}

// Ready pings the store.
func (h *HealthHandler) Ready(c *gin.Context) {
	var err error
	if h.store == nil {
		err = appErrors.Clone(appErrors.ErrStore, "Database unavailable")
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		err = h.store.Ready(ctx)
	}
	if err != nil {
		appErr := appErrors.Clone(appErrors.FromError(err), "")
		appErr.Status = http.StatusServiceUnavailable
		response.Error(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *HealthHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
