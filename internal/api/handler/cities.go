package handler

import (
	"net/http"

	"github.com/airadvisor/airadvisor/internal/api/models"
	"github.com/airadvisor/airadvisor/internal/api/response"
	"github.com/airadvisor/airadvisor/internal/cityprofile"
)

// fallbackCities is served when no city profiles were loaded. It mirrors the
// Metro Manila city list the service historically shipped with.
var fallbackCities = []string{
	"Caloocan", "Las Piñas", "Makati City", "Malabon", "Mandaluyong City",
	"Navotas", "Parañaque City", "Pasig", "Quezon City", "San Juan",
	"Taguig", "Valenzuela", "Manila",
}

// CitiesHandler handles GET /cities.
type CitiesHandler struct {
	profiles *cityprofile.Store
}

// NewCitiesHandler creates a new CitiesHandler.
func NewCitiesHandler(profiles *cityprofile.Store) *CitiesHandler {
	return &CitiesHandler{profiles: profiles}
}

// ListCities returns the sorted known city names, or the static fallback
// list when the profile store is empty.
func (h *CitiesHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	if h.profiles != nil && h.profiles.Len() > 0 {
		response.JSON(w, r, http.StatusOK, models.CitiesResponse{Cities: h.profiles.Names()})
		return
	}
	response.JSON(w, r, http.StatusOK, models.CitiesResponse{Cities: fallbackCities})
}
