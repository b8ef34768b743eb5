package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sehaty/sehaty/config"
	v1 "github.com/sehaty/sehaty/internal/handler/v1"
	"github.com/sehaty/sehaty/internal/service"
	"github.com/sehaty/sehaty/internal/snapshot"
	"github.com/sehaty/sehaty/internal/storage/postgres"
	"github.com/sehaty/sehaty/pkg/database"
	"github.com/sehaty/sehaty/pkg/logger"
	"github.com/sehaty/sehaty/pkg/metrics"
	"github.com/sehaty/sehaty/pkg/tracer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	log.Info("starting",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracer: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	collector := metrics.NewCollector("sehaty")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if err := database.Migrate(db, log); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Export pool size so connection exhaustion is visible before it bites.
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			collector.DBConnections.Set(float64(sqlDB.Stats().OpenConnections))
		}
	}()

	patientRepo := postgres.NewPatientRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)
	visitRepo := postgres.NewVisitRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	auditSvc := service.NewAuditService(auditRepo, collector, log)
	defer auditSvc.Shutdown()

	patientSvc := service.NewPatientService(patientRepo, auditSvc, collector, log)
	historySvc := service.NewHistoryService(patientRepo, historyRepo, auditSvc, log)
	visitSvc := service.NewVisitService(patientRepo, visitRepo, auditSvc, log)
	aggregator := snapshot.NewAggregator(patientRepo, historyRepo, log)

	router := v1.NewRouter(v1.Deps{
		Log:         log,
		Collector:   collector,
		ServiceName: cfg.Tracing.ServiceName,
		HealthCheck: sqlDB.Ping,
		Patients:    v1.NewPatientHandler(patientSvc),
		Snapshot:    v1.NewSnapshotHandler(aggregator, auditSvc, collector, cfg.Server.SnapshotTimeout, log),
		History:     v1.NewHistoryHandler(historySvc),
		Visits:      v1.NewVisitHandler(visitSvc),
		Audit:       v1.NewAuditHandler(auditSvc),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
