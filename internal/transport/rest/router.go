package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/expense-insights/api"
	"github.com/frahmantamala/expense-insights/internal/advisor"
	"github.com/frahmantamala/expense-insights/internal/auth"
	"github.com/frahmantamala/expense-insights/internal/category"
	"github.com/frahmantamala/expense-insights/internal/expense"
	"github.com/frahmantamala/expense-insights/internal/theme"
	"github.com/frahmantamala/expense-insights/internal/transport/middleware"
	"github.com/frahmantamala/expense-insights/internal/transport/swagger"
)

// RegisterAllRoutes mounts every handler. expenseHandler may be nil when no
// expense store is configured; validator may be nil to skip request validation.
func RegisterAllRoutes(router *chi.Mux, healthHandler *HealthHandler, authHandler *auth.Handler, advisorHandler *advisor.Handler, expenseHandler *expense.Handler, categoryHandler *category.Handler, themeHandler *theme.Handler, validator *middleware.OpenAPIValidator, allowedOrigins string, logger *slog.Logger) {
	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get(swagger.SpecURL, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(api.Spec)
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	validate := func(r chi.Router) {
		if validator != nil {
			r.Use(validator.Middleware)
		}
	}

	router.Route("/api/v1", func(r chi.Router) {
		// Public reference data
		r.Group(func(pub chi.Router) {
			validate(pub)

			pub.Get("/health", healthHandler.healthCheckHandler)
			pub.Get("/ping", healthHandler.pingHandler)
			pub.Get("/categories", categoryHandler.GetCategories)
			pub.Get("/categories/{name}", categoryHandler.GetCategory)
			pub.Get("/theme", themeHandler.GetTheme)
		})

		// Protected routes: the token is checked before the request shape
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)
			validate(pr)

			pr.Get("/auth/me", authHandler.Me)

			pr.Route("/insights", func(ir chi.Router) {
				ir.Post("/categorize", advisorHandler.Categorize)
				ir.Post("/summary", advisorHandler.Summary)
				ir.Post("/suggestions", advisorHandler.Suggestions)
				ir.Post("/predictions", advisorHandler.Predictions)
				ir.Get("/overview", advisorHandler.MonthlyOverview)
			})

			if expenseHandler != nil {
				pr.Route("/expenses", func(er chi.Router) {
					er.Get("/", expenseHandler.ListExpenses)
					er.Get("/{id}", expenseHandler.GetExpense)
				})
			}
		})
	})
}
