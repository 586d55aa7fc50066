package aqi

// Segment is one row of a pollutant's breakpoint table: the concentration
// interval [ConcLow, ConcHigh] maps linearly onto the index interval
// [IndexLow, IndexHigh].
type Segment struct {
	ConcLow   float64
	ConcHigh  float64
	IndexLow  float64
	IndexHigh float64
}

// breakpoints holds the published EPA breakpoint tables. Units are implicit
// and must be respected by callers: pm25/pm10 in µg/m³, no2/so2/o3 in ppb,
// co in ppm. Segments are ascending and contiguous per pollutant; the table
// is immutable after init.
var breakpoints = map[Pollutant][]Segment{
	PollutantPM25: {
		{0, 12, 0, 50},
		{12.1, 35.4, 51, 100},
		{35.5, 55.4, 101, 150},
		{55.5, 150.4, 151, 200},
		{150.5, 250.4, 201, 300},
		{250.5, 350.4, 301, 400},
		{350.5, 500.4, 401, 500},
	},
	PollutantPM10: {
		{0, 54, 0, 50},
		{55, 154, 51, 100},
		{155, 254, 101, 150},
		{255, 354, 151, 200},
		{355, 424, 201, 300},
		{425, 504, 301, 400},
		{505, 604, 401, 500},
	},
	// O3 8-hour, ppb. The published table stops at 200 ppb; higher values
	// extrapolate from the last segment.
	PollutantO3: {
		{0, 54, 0, 50},
		{55, 70, 51, 100},
		{71, 85, 101, 150},
		{86, 105, 151, 200},
		{106, 200, 201, 300},
	},
	// CO 8-hour, ppm.
	PollutantCO: {
		{0, 4.4, 0, 50},
		{4.5, 9.4, 51, 100},
		{9.5, 12.4, 101, 150},
		{12.5, 15.4, 151, 200},
		{15.5, 30.4, 201, 300},
		{30.5, 40.4, 301, 400},
		{40.5, 50.4, 401, 500},
	},
	// NO2 1-hour, ppb.
	PollutantNO2: {
		{0, 53, 0, 50},
		{54, 100, 51, 100},
		{101, 360, 101, 150},
		{361, 649, 151, 200},
		{650, 1249, 201, 300},
		{1250, 1649, 301, 400},
		{1650, 2049, 401, 500},
	},
	// SO2 1-hour, ppb.
	PollutantSO2: {
		{0, 35, 0, 50},
		{36, 75, 51, 100},
		{76, 185, 101, 150},
		{186, 304, 151, 200},
		{305, 604, 201, 300},
		{605, 804, 301, 400},
		{805, 1004, 401, 500},
	},
}

// SegmentsFor returns the ordered breakpoint segments for a pollutant.
// The second return is false for unrecognized pollutants.
func SegmentsFor(p Pollutant) ([]Segment, bool) {
	segs, ok := breakpoints[p]
	return segs, ok
}
