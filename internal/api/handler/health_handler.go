package handler

import (
	"net/http"
	"time"
)

// HealthHandler serves the liveness probe on the ops listener and reports
// how long the process has been up.
type HealthHandler struct {
	started time.Time
}

func NewHealthHandler(started time.Time) *HealthHandler {
	return &HealthHandler{started: started}
}

// Health handles GET /health
//
// @Summary  Liveness probe with uptime
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started) / time.Second),
	})
}
