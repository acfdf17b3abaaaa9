package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikitsoni/expense-system/internal/middleware"
)

// Routes builds the application mux. Every API route is wrapped with
// per-route metrics; logging and CORS wrap the whole mux in main.
func Routes(users *UserHandler, expenses *ExpenseHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /users", middleware.Metrics("/users", users.Register))
	mux.HandleFunc("GET /users/{id}", middleware.Metrics("/users/{id}", users.Get))
	mux.HandleFunc("POST /expenses", middleware.Metrics("/expenses", expenses.Add))
	mux.HandleFunc("GET /users/{id}/expenses", middleware.Metrics("/users/{id}/expenses", expenses.ListByUser))

	mux.HandleFunc("GET /healthz", health.Check)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
