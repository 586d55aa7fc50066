// Package reading defines the per-request reading set and the resolution of
// city defaults against explicit overrides.
package reading

import (
	"strconv"

	"github.com/airadvisor/airadvisor/internal/aqi"
)

// Field names a recognized reading. The six pollutant fields share their
// names with aqi.Pollutant; temperature and humidity only feed the
// classifier.
type Field string

const (
	FieldPM25        Field = "pm25"
	FieldPM10        Field = "pm10"
	FieldNO2         Field = "no2"
	FieldSO2         Field = "so2"
	FieldCO          Field = "co"
	FieldO3          Field = "o3"
	FieldTemperature Field = "temperature"
	FieldHumidity    Field = "humidity"
)

// Fields is the full recognized field set in canonical order.
var Fields = []Field{
	FieldPM25,
	FieldPM10,
	FieldNO2,
	FieldSO2,
	FieldCO,
	FieldO3,
	FieldTemperature,
	FieldHumidity,
}

// Known reports whether f is a recognized field.
func Known(f Field) bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Set maps recognized fields to observed values. A field absent from the map
// is unknown; an absent reading is never the same as a zero reading.
type Set map[Field]float64

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Get returns the value for a field and whether it is present.
func (s Set) Get(f Field) (float64, bool) {
	v, ok := s[f]
	return v, ok
}

// Pollutant returns the concentration for a pollutant, by its shared field
// name, and whether it is present.
func (s Set) Pollutant(p aqi.Pollutant) (float64, bool) {
	v, ok := s[Field(p)]
	return v, ok
}

// Coerce converts a decoded JSON value to a reading. JSON numbers and
// numeric strings are accepted; anything else is treated as absent rather
// than an error.
func Coerce(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
