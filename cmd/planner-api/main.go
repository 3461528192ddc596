package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campusware/planner-api/internal/handler"
	"github.com/campusware/planner-api/internal/middleware"
	"github.com/campusware/planner-api/internal/repository"
	"github.com/campusware/planner-api/internal/service"
	"github.com/campusware/planner-api/pkg/config"
	"github.com/campusware/planner-api/pkg/logger"
	corsmiddleware "github.com/campusware/planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusware/planner-api/pkg/middleware/requestid"
)

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

	// The planner cannot exist without its catalog.
	catalog, err := repository.NewCatalogRepository(cfg.Catalog.File, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to load course catalog", "file", cfg.Catalog.File, "error", err)
	}
	logr.Sugar().Infow("course catalog loaded", "file", cfg.Catalog.File, "courses", catalog.Size(), "skipped", catalog.SkippedLines())

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	planner := service.NewPlannerService(catalog, cfg.Export.Dir, validator.New(), logr, metricsSvc)

	catalogHandler := handler.NewCatalogHandler(planner)
	scheduleHandler := handler.NewScheduleHandler(planner)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/catalog", catalogHandler.List)
		api.GET("/catalog/courses", catalogHandler.GetCourse)

		api.GET("/schedule", scheduleHandler.Get)
		api.GET("/schedule/full", scheduleHandler.GetFull)
		api.POST("/schedule/courses", scheduleHandler.AddCourse)
		api.POST("/schedule/events", scheduleHandler.AddEvent)
		api.DELETE("/schedule/activities/:index", scheduleHandler.Remove)
		api.POST("/schedule/reset", scheduleHandler.Reset)
		api.PUT("/schedule/title", scheduleHandler.UpdateTitle)
		api.POST("/schedule/export", scheduleHandler.Export)
		api.GET("/schedule/download", scheduleHandler.Download)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
