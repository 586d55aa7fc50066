// Package models defines the request and response payloads of the advisory
// API.
package models

import (
	"encoding/json"
	"math"

	"github.com/airadvisor/airadvisor/internal/advisory"
	"github.com/airadvisor/airadvisor/internal/aqi"
	"github.com/airadvisor/airadvisor/internal/reading"
)

// PredictRequest is the body of POST /predict. Every field is optional.
type PredictRequest struct {
	// City is the request's city as supplied, nil when omitted or not a
	// string. It is echoed back in the response.
	City *string

	// Readings holds the explicit numeric fields that were present and
	// usable. Malformed values are skipped here, never rejected.
	Readings reading.Set
}

// UnmarshalJSON decodes leniently, field by field: a malformed reading value
// is treated as absent instead of failing the request. Only a body that is
// not a JSON object at all is an error.
func (p *PredictRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Readings = reading.Set{}
	if city, ok := raw["city"].(string); ok && city != "" {
		p.City = &city
	}
	for _, f := range reading.Fields {
		value, ok := raw[string(f)]
		if !ok {
			continue
		}
		if num, ok := reading.Coerce(value); ok {
			p.Readings[f] = num
		}
	}
	return nil
}

// PredictResponse is the body of a successful POST /predict.
type PredictResponse struct {
	City          *string             `json:"city"`
	Prediction    string              `json:"prediction"`
	Probabilities map[string]float64  `json:"probabilities"`
	InputsUsed    map[string]*float64 `json:"inputs_used"`
	SubAQI        map[string]*float64 `json:"sub_aqi"`
	AQI           *float64            `json:"aqi"`
	AQICategory   *string             `json:"aqi_category"`
	MainPollutant *string             `json:"main_pollutant"`
}

// NewPredictResponse assembles the response payload from an advisory.
// Rounding to one decimal happens here and nowhere earlier.
func NewPredictResponse(city *string, result *advisory.Advisory) PredictResponse {
	resp := PredictResponse{
		City:          city,
		Prediction:    result.Prediction,
		Probabilities: result.Probabilities,
		InputsUsed:    make(map[string]*float64, len(reading.Fields)),
		SubAQI:        make(map[string]*float64, len(aqi.Pollutants)),
	}

	for _, f := range reading.Fields {
		if v, ok := result.Inputs.Get(f); ok {
			value := v
			resp.InputsUsed[string(f)] = &value
		} else {
			resp.InputsUsed[string(f)] = nil
		}
	}

	for _, p := range aqi.Pollutants {
		if v, ok := result.SubIndices[p]; ok {
			rounded := round1(v)
			resp.SubAQI[string(p)] = &rounded
		} else {
			resp.SubAQI[string(p)] = nil
		}
	}

	if result.HasOverall {
		overall := round1(result.Overall.AQI)
		category := string(result.Overall.Category)
		main := string(result.Overall.MainPollutant)
		resp.AQI = &overall
		resp.AQICategory = &category
		resp.MainPollutant = &main
	}

	return resp
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CitiesResponse is the body of GET /cities.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// HealthResponse is the body of the liveness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
