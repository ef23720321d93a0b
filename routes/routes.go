package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Dosada05/bracket-seeding/handlers"
	"github.com/Dosada05/bracket-seeding/metrics"
	"github.com/Dosada05/bracket-seeding/middleware"
	"github.com/Dosada05/bracket-seeding/services"
)

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	seedingHandler *handlers.SeedingHandler,
	planHandler *handlers.PlanHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(opts.Metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", healthHandler.Healthz)
	router.Handle("/metrics", opts.Metrics.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Get("/ws/plans", webSocketHandler.ServePlans)

	authenticate := middleware.Authenticate(opts.JWTSecret, opts.Logger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(opts.RateLimiter.Middleware)
		r.Use(chiMiddleware.Timeout(30 * time.Second))
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Post("/auth/token", authHandler.IssueToken)

		r.Get("/orderings", seedingHandler.ListOrderings)
		r.Get("/orderings/minor/{size}", seedingHandler.GetDefaultMinorOrdering)

		r.Route("/seeding", func(r chi.Router) {
			r.Post("/order", seedingHandler.Order)
			r.Post("/pairs", seedingHandler.Pairs)
			r.Post("/groups", seedingHandler.Groups)
			r.Post("/balance-byes", seedingHandler.BalanceByes)
			r.Post("/winner", seedingHandler.Winner)
		})

		r.Route("/plans", func(r chi.Router) {
			r.Post("/preview", planHandler.PreviewPlan)
			r.Get("/", planHandler.ListPlans)
			r.Get("/{planID}", planHandler.GetPlan)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Use(middleware.Authorize(services.OrganizerRole))

				r.Post("/", planHandler.CreatePlan)
				r.Delete("/{planID}", planHandler.DeletePlan)
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"the requested resource could not be found"}` + "\n"))
	})
}
