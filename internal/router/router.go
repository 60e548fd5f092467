package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/handlers"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/middleware"
)

func NewRouter(deps *handlers.Deps, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	if len(allowedOrigins) > 0 {
		r.Use(middleware.CORS(allowedOrigins))
	}

	txh := handlers.NewTransactionHandlers(deps)
	hh := handlers.NewHealthHandlers(deps)

	r.Mount("/api/transactions", txh.TransactionRoutes())
	r.Mount("/healthz", hh.HealthRoutes())
	return r
}
