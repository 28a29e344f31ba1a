package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	importHandler ImportHandler,
	reportHandler ReportHandler,
	employeeHandler EmployeeHandler,
	manualEntryHandler ManualEntryHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Retry-After"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json", "multipart/form-data"))

		r.Route("/import", func(r chi.Router) {
			r.Post("/checkins", importHandler.ImportCheckins)
			r.Post("/users", importHandler.ImportUsers)
		})

		r.Get("/data", reportHandler.GetMonthData)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/overtime", reportHandler.GetOvertimeReport)
		})

		r.Get("/employees", employeeHandler.ListEmployees)

		r.Route("/manual-entries", func(r chi.Router) {
			r.Get("/", manualEntryHandler.ListManualEntries)
			r.Post("/", manualEntryHandler.CreateManualEntry)
			r.Delete("/{id}", manualEntryHandler.DeleteManualEntry)
		})
	})
	return r
}
