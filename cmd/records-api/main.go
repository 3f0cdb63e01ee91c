package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/academic-records/api/swagger"
	"github.com/noah-isme/academic-records/internal/handler"
	"github.com/noah-isme/academic-records/internal/repository"
	"github.com/noah-isme/academic-records/internal/seed"
	"github.com/noah-isme/academic-records/internal/service"
	"github.com/noah-isme/academic-records/pkg/config"
	"github.com/noah-isme/academic-records/pkg/export"
	"github.com/noah-isme/academic-records/pkg/logger"
)

// @title Academic Records API
// @version 1.0.0
// @description Course catalog, enrollment, grading and weekly scheduling
// @BasePath /api/v1
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

	policy, err := service.NewBoundaryPolicy(cfg.Schedule.AfternoonStart, cfg.Schedule.EveningStart)
	if err != nil {
		logr.Fatal("invalid schedule boundaries", zap.Error(err))
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	academic := service.NewAcademicService(repository.NewRegistry(), validator.New(), logr, metrics, service.AcademicConfig{
		PassThreshold:   cfg.Records.PrereqPassThreshold,
		GPAScaleDivisor: cfg.Records.GPAScaleDivisor,
		BucketPolicy:    policy,
	})
	exports := service.NewExportService(academic, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	if cfg.Seed.Demo {
		if _, err := seed.Demo(academic, logr); err != nil {
			logr.Fatal("failed to load demo records", zap.Error(err))
		}
	}

	r := handler.NewRouter(handler.RouterDeps{
		Config:   cfg,
		Logger:   logr,
		Metrics:  metrics,
		Academic: academic,
		Exports:  exports,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
