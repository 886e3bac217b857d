package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tradedesk/pnl-dashboard-backend/internal/api/handlers"
	custommiddleware "github.com/tradedesk/pnl-dashboard-backend/internal/api/middleware"
	"github.com/tradedesk/pnl-dashboard-backend/internal/config"
	"github.com/tradedesk/pnl-dashboard-backend/internal/service"
)

// Services bundles the service dependencies NewRouter wires into handlers.
type Services struct {
	System   *service.SystemService
	Entry    *service.EntryService
	Settings *service.SettingsService
	Metrics  *service.MetricsService
	Snapshot *service.SnapshotService
}

// NewRouter creates and configures the HTTP router. Read endpoints are open;
// write endpoints require a session token issued by the login endpoint.
func NewRouter(svcs Services, tokenAuth *custommiddleware.TokenAuth, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(tokenAuth, cfg.Auth.AdminPasscode)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/entries", func(r chi.Router) {
			entryHandler := handlers.NewEntryHandler(svcs.Entry)
			r.Get("/", entryHandler.Entries)
			r.Group(func(r chi.Router) {
				r.Use(tokenAuth.RequireAuth)
				r.Post("/", entryHandler.UpsertEntry)
				r.Post("/import", entryHandler.ImportEntries)
				r.With(custommiddleware.ValidateUUIDParam("entryId")).
					Delete("/{entryId}", entryHandler.DeleteEntry)
			})
		})

		r.Route("/metrics", func(r chi.Router) {
			metricsHandler := handlers.NewMetricsHandler(svcs.Metrics, svcs.Snapshot)
			r.Get("/", metricsHandler.Report)
			r.Get("/monthly", metricsHandler.Monthly)
			r.Get("/snapshots", metricsHandler.Snapshots)
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(svcs.Settings)
			r.Get("/", settingsHandler.Settings)
			r.With(tokenAuth.RequireAuth).Put("/", settingsHandler.UpdateSettings)
		})

		r.Route("/calendar", func(r chi.Router) {
			calendarHandler := handlers.NewCalendarHandler()
			r.Get("/{date}", calendarHandler.Day)
		})
	})

	return r
}
