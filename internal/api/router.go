package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/middleware"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/service"
)

// Services holds the services the router dispatches to.
type Services struct {
	System    *service.SystemService
	Holdings  *service.HoldingService
	Goals     *service.GoalService
	Analytics *service.AnalyticsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/holdings", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(services.Holdings)
			r.Get("/", holdingHandler.Holdings)
			r.Post("/", holdingHandler.CreateHolding)
			r.Get("/latest", holdingHandler.LatestHoldings)
			r.Post("/import", holdingHandler.ImportSnapshot)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", holdingHandler.DeleteHolding)
			})
		})

		r.Route("/goals", func(r chi.Router) {
			goalHandler := handlers.NewGoalHandler(services.Goals)
			r.Get("/", goalHandler.Goals)
			r.Post("/", goalHandler.CreateGoal)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", goalHandler.DeleteGoal)
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics)
			r.Get("/dashboard", analyticsHandler.Dashboard)
			r.Get("/projection", analyticsHandler.Projection)
		})
	})

	return r
}
