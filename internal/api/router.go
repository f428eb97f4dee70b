package api

import (
	"log/slog"
	"net/http"
	"time"

	"loan-tracker/internal/api/handler"
	mw "loan-tracker/internal/api/middleware"
	"loan-tracker/internal/config"
	"loan-tracker/internal/domain/customer"
	"loan-tracker/internal/domain/loan"
	"loan-tracker/internal/domain/partner"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/traceid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(
	loanService loan.LoanService,
	customerService customer.CustomerService,
	partnerService partner.PartnerService,
	store handler.StoreDiagnostics,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupAPIRoutes(router, loanService, customerService, partnerService, logger)
	setupDiagnosticRoutes(router, store, logger)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupAPIRoutes(
	router *chi.Mux,
	loanService loan.LoanService,
	customerService customer.CustomerService,
	partnerService partner.PartnerService,
	logger *slog.Logger,
) {
	customerHandler := handler.NewCustomerHandler(customerService, logger)
	partnerHandler := handler.NewPartnerHandler(partnerService, logger)
	loanHandler := handler.NewLoanHandler(loanService, logger)

	router.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", customerHandler.CreateCustomer)
			r.Get("/", customerHandler.ListCustomers)
		})
		r.Route("/partners", func(r chi.Router) {
			r.Post("/", partnerHandler.CreatePartner)
			r.Get("/", partnerHandler.ListPartners)
		})
		r.Route("/loans", func(r chi.Router) {
			r.Post("/", loanHandler.CreateLoan)
			r.Get("/", loanHandler.ListLoans)
		})
	})
}

func setupDiagnosticRoutes(router *chi.Mux, store handler.StoreDiagnostics, logger *slog.Logger) {
	h := handler.NewDiagnosticHandler(store, logger)
	router.Get("/", h.Liveness)
	router.Get("/test", h.Diagnostics)
}
