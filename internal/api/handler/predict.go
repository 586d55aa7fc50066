// Package handler provides HTTP handlers for the advisory API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/airadvisor/airadvisor/internal/advisory"
	"github.com/airadvisor/airadvisor/internal/api/models"
	"github.com/airadvisor/airadvisor/internal/api/response"
	"github.com/airadvisor/airadvisor/internal/reading"
)

// PredictHandler handles POST /predict.
type PredictHandler struct {
	service *advisory.Service
}

// NewPredictHandler creates a new PredictHandler.
func NewPredictHandler(service *advisory.Service) *PredictHandler {
	return &PredictHandler{service: service}
}

// Predict computes an advisory for the supplied readings, defaulted from the
// named city's latest known readings when a city is given.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req models.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}
	if req.Readings == nil {
		req.Readings = reading.Set{}
	}

	city := ""
	if req.City != nil {
		city = *req.City
	}

	result, err := h.service.Advise(r.Context(), city, req.Readings)
	if err != nil {
		response.InternalError(w, r, "advisory computation failed")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewPredictResponse(req.City, result))
}
