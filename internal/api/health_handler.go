package api

import (
	"context"
	"net/http"

	"github.com/medcamphq/medcamp-api/internal/api/shared"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler creates a new HealthHandler with the given dependencies.
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Check handles GET /healthz requests, pinging the database.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		HandleAPIError(w, r, err, "Database unreachable")
		return
	}

	shared.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
