package handler

import (
	"net/http"

	"github.com/airadvisor/airadvisor/internal/api/models"
	"github.com/airadvisor/airadvisor/internal/api/response"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version string
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version string) *OpsHandler {
	return &OpsHandler{version: version}
}

// Liveness handles GET / - liveness probe.
func (h *OpsHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.HealthResponse{
		Status:  "air quality advisory API is running",
		Version: h.version,
	})
}
