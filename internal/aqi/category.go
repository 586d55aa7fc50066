package aqi

// Category is the discrete severity band for an AQI value. The labels match
// the published EPA category names and are part of the response contract.
type Category string

const (
	CategoryGood                       Category = "Good"
	CategoryModerate                   Category = "Moderate"
	CategoryUnhealthyForSensitiveGroup Category = "Unhealthy for Sensitive Groups"
	CategoryUnhealthy                  Category = "Unhealthy"
	CategoryVeryUnhealthy              Category = "Very Unhealthy"
	CategoryHazardous                  Category = "Hazardous"
)

// CategoryFor maps an AQI value to its category. Thresholds are inclusive on
// the upper bound. Values above 300 are Hazardous with no upper limit, so
// extrapolated AQI values beyond 500 still classify.
func CategoryFor(aqi float64) Category {
	switch {
	case aqi <= 50:
		return CategoryGood
	case aqi <= 100:
		return CategoryModerate
	case aqi <= 150:
		return CategoryUnhealthyForSensitiveGroup
	case aqi <= 200:
		return CategoryUnhealthy
	case aqi <= 300:
		return CategoryVeryUnhealthy
	default:
		return CategoryHazardous
	}
}
