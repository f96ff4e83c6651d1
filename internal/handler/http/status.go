package http

import (
	"net/http"

	"github.com/dmaraujo/gymkeeper/internal/utils"
)

// status reports service health, version and uptime. Unauthenticated so
// load balancers and probes can hit it.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.StatusService.Status(r.Context()), http.StatusOK)
}
