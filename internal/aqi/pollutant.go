// Package aqi computes US EPA Air Quality Index values from raw pollutant
// concentrations using piecewise-linear breakpoint tables.
package aqi

// Pollutant identifies one of the pollutants the index covers.
type Pollutant string

const (
	PollutantPM25 Pollutant = "pm25"
	PollutantPM10 Pollutant = "pm10"
	PollutantNO2  Pollutant = "no2"
	PollutantSO2  Pollutant = "so2"
	PollutantCO   Pollutant = "co"
	PollutantO3   Pollutant = "o3"
)

// Pollutants is the canonical pollutant order. Aggregation ties are broken by
// this order, so it is part of the observable contract and must not change.
var Pollutants = []Pollutant{
	PollutantPM25,
	PollutantPM10,
	PollutantNO2,
	PollutantSO2,
	PollutantCO,
	PollutantO3,
}

// Known reports whether p is one of the recognized pollutant ids.
func Known(p Pollutant) bool {
	_, ok := breakpoints[p]
	return ok
}
