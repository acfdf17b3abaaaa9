package handlers

import (
	"net/http"

	"github.com/nikitsoni/expense-system/internal/storage"
)

// HealthHandler reports whether the process and its store are usable.
type HealthHandler struct {
	store storage.Store
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /healthz. It pings the store so load balancers stop
// routing to a process whose backend is gone.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
