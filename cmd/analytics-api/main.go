package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/student-analytics-api/api/swagger"
	"github.com/noah-isme/student-analytics-api/internal/handler"
	"github.com/noah-isme/student-analytics-api/internal/repository"
	"github.com/noah-isme/student-analytics-api/internal/server"
	"github.com/noah-isme/student-analytics-api/internal/service"
	"github.com/noah-isme/student-analytics-api/pkg/config"
	"github.com/noah-isme/student-analytics-api/pkg/database"
	"github.com/noah-isme/student-analytics-api/pkg/export"
	"github.com/noah-isme/student-analytics-api/pkg/logger"
)

// @title Student Analytics API
// @version 1.0.0
// @description Read-only access to the student performance table and its chart aggregates
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := database.Ping(pingCtx, db); err != nil {
		logr.Warn("database not reachable at startup, continuing",
			zap.String("driver", cfg.Database.Driver),
			zap.String("host", cfg.Database.Host),
			zap.Error(err),
		)
	} else {
		logr.Info("database connected", zap.String("driver", cfg.Database.Driver), zap.String("table", cfg.Database.Table))
	}
	cancel()

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
		if err := metricsSvc.RegisterDBStats(db.DB, "student_records"); err != nil {
			logr.Warn("failed to register db stats collector", zap.Error(err))
		}
	}

	repo := repository.NewStudentRecordRepository(db, cfg.Database.Table)
	recordSvc := service.NewRecordService(repo, validator.New(), metricsSvc, logr)
	analyticsSvc := service.NewAnalyticsService(repo, metricsSvc, logr)
	exportSvc := service.NewExportService(recordSvc, logr, export.NewCSVExporter(), export.NewPDFExporter())

	r := server.NewRouter(server.Options{
		Logger:         logr,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        metricsSvc,
		ServeMetrics:   cfg.Metrics.Enabled,
		ServeDocs:      cfg.Env != config.EnvProduction,
		Health:         handler.NewHealthHandler(recordSvc, metricsSvc),
		Records:        handler.NewRecordHandler(recordSvc, exportSvc),
		Analytics:      handler.NewAnalyticsHandler(analyticsSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "allowed_origins", cfg.CORS.AllowedOrigins)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
