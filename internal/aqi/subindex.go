package aqi

// interpolate maps a concentration onto the index scale of a single segment.
func interpolate(conc float64, s Segment) float64 {
	return ((s.IndexHigh-s.IndexLow)/(s.ConcHigh-s.ConcLow))*(conc-s.ConcLow) + s.IndexLow
}

// SubIndex computes the sub-index for one pollutant concentration.
//
// The first segment whose closed interval contains the concentration wins;
// adjacent segments share boundary values, and a boundary concentration
// belongs to the lower segment's ConcHigh. Concentrations above the table's
// ceiling extrapolate from the last segment's slope without an upper cap.
// Concentrations below the lowest segment (negative input) and unrecognized
// pollutants yield no value. The result is never rounded here.
func SubIndex(p Pollutant, conc float64) (float64, bool) {
	segs, ok := breakpoints[p]
	if !ok {
		return 0, false
	}

	for _, s := range segs {
		if conc >= s.ConcLow && conc <= s.ConcHigh {
			return clampFloor(interpolate(conc, s)), true
		}
	}

	last := segs[len(segs)-1]
	if conc > last.ConcHigh {
		return clampFloor(interpolate(conc, last)), true
	}

	// Below the table's floor: no sub-index.
	return 0, false
}

func clampFloor(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
