package aqi

// Result is the outcome of aggregating per-pollutant sub-indices. All three
// fields are meaningful only when Aggregate reports ok.
type Result struct {
	AQI           float64
	Category      Category
	MainPollutant Pollutant
}

// Aggregate reduces per-pollutant sub-indices to an overall AQI, its
// category, and the dominant pollutant. Pollutants absent from the map are
// ignored. With no sub-indices at all, ok is false.
//
// The overall AQI is the maximum sub-index. Ties are broken by the canonical
// Pollutants order: the first pollutant attaining the maximum wins.
func Aggregate(sub map[Pollutant]float64) (Result, bool) {
	if len(sub) == 0 {
		return Result{}, false
	}

	var (
		found bool
		best  Result
	)
	for _, p := range Pollutants {
		v, ok := sub[p]
		if !ok {
			continue
		}
		if !found || v > best.AQI {
			found = true
			best.AQI = v
			best.MainPollutant = p
		}
	}
	if !found {
		// Only unrecognized pollutant keys were supplied.
		return Result{}, false
	}

	best.Category = CategoryFor(best.AQI)
	return best, true
}
