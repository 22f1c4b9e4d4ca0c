package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/household-tasks/internal/platform/logging"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.LiveResponse())
}

// Readiness handles GET /health/ready. It answers 503 while any registered
// component (entity store, session registry) reports a failure.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, healthy := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	w.Header().Set("Cache-Control", "no-store")
	if !healthy {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.Any("checks", resp.Checks),
		)
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
