package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/student-analytics-api/internal/handler"
	internalmiddleware "github.com/noah-isme/student-analytics-api/internal/middleware"
	"github.com/noah-isme/student-analytics-api/internal/service"
	"github.com/noah-isme/student-analytics-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/student-analytics-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/student-analytics-api/pkg/middleware/requestid"
)

const metricsRoute = "/metrics"

// Options carries everything the router needs. Nil Metrics disables instrumentation
// and the /metrics route.
type Options struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	Metrics        *service.MetricsService
	ServeMetrics   bool
	ServeDocs      bool

	Health    *handler.HealthHandler
	Records   *handler.RecordHandler
	Analytics *handler.AnalyticsHandler
}

// NewRouter assembles the HTTP surface.
func NewRouter(opts Options) *gin.Engine {
	logr := opts.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = false
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(internalmiddleware.Recovery(logr))
	r.Use(internalmiddleware.Metrics(opts.Metrics, metricsRoute))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))

	r.GET("/health", opts.Health.Health)
	r.GET("/ready", opts.Health.Ready)
	if opts.ServeMetrics && opts.Metrics != nil {
		r.GET(metricsRoute, opts.Health.Prometheus)
	}
	if opts.ServeDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.GET("/preview", opts.Records.Preview)
	api.GET("/rows", opts.Records.Rows)
	api.GET("/rows/export", opts.Records.Export)

	analytics := api.Group("/analytics")
	analytics.GET("/avg-exam-by-cluster", opts.Analytics.AvgExamByCluster)
	analytics.GET("/level-distribution", opts.Analytics.LevelDistribution)
	analytics.GET("/study-hours-buckets", opts.Analytics.StudyHoursBuckets)

	r.NoRoute(internalmiddleware.NotFound())

	return r
}
