package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/overtime-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/overtime-backend-go/internal/repository/postgresql"
	employeeService "github.com/cmlabs-hris/overtime-backend-go/internal/service/employee"
	importService "github.com/cmlabs-hris/overtime-backend-go/internal/service/imports"
	manualEntryService "github.com/cmlabs-hris/overtime-backend-go/internal/service/manualentry"
	overtimeService "github.com/cmlabs-hris/overtime-backend-go/internal/service/overtime"
	reportService "github.com/cmlabs-hris/overtime-backend-go/internal/service/report"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	policy, err := cfg.OvertimePolicy()
	if err != nil {
		logger.Error("Invalid overtime policy", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		logger.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	checkinRepo := postgresql.NewCheckinRepository(db)
	manualEntryRepo := postgresql.NewManualEntryRepository(db)

	detector := overtimeService.NewDetector(policy)
	importSvc := importService.NewImportService(employeeRepo, checkinRepo, cfg.Import.ChunkSize)
	reportSvc := reportService.NewReportService(employeeRepo, checkinRepo, manualEntryRepo, detector)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	manualEntrySvc := manualEntryService.NewManualEntryService(manualEntryRepo, policy.Rounding)

	importHandler := appHTTP.NewImportHandler(importSvc, cfg.Import.MaxUploadBytes, cfg.Import.RetryAfter)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	manualEntryHandler := appHTTP.NewManualEntryHandler(manualEntrySvc)

	router := appHTTP.NewRouter(
		logger,
		cfg.App.AllowedOrigins,
		importHandler,
		reportHandler,
		employeeHandler,
		manualEntryHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.App.ReadTimeout,
		WriteTimeout:      cfg.App.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server running",
			"addr", server.Addr,
			"sentinel_id", policy.SentinelID,
			"window", cfg.Overtime.WindowStart+"-"+cfg.Overtime.WindowEnd,
			"rounding", policy.Rounding,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "overtime-backend"),
		slog.String("env", cfg.App.Env),
	)
}

func parseLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelInfo
	}
	return level
}
