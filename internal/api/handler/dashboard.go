package handler

import (
	"net/http"

	"github.com/airadvisor/airadvisor/internal/api/response"
	"github.com/airadvisor/airadvisor/internal/dashboard"
)

// DashboardHandler handles GET /dashboard.
type DashboardHandler struct {
	data     dashboard.Data
	accuracy *float64
}

// NewDashboardHandler creates a new DashboardHandler. data may be nil when
// the dashboard source was unavailable at startup; accuracy is the model
// bundle's held-out accuracy, used for the minimal fallback payload.
func NewDashboardHandler(data dashboard.Data, accuracy *float64) *DashboardHandler {
	return &DashboardHandler{data: data, accuracy: accuracy}
}

// GetDashboard returns the stored dashboard document verbatim, or a minimal
// fallback when none was loaded.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if len(h.data) > 0 {
		response.JSON(w, r, http.StatusOK, h.data)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"model_accuracy": h.accuracy})
}
