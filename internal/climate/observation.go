// Package climate is the date-range aggregation and ranking engine over daily
// station observations. Every function is a pure scan over a fully
// materialised, read-only snapshot; none of them retain their inputs.
package climate

// Observation is one station's readings for one day. A nil reading means the
// station reported nothing for that column on that day.
type Observation struct {
	StationID     string
	Date          Date
	Precipitation *float64
	Temperature   *float64
}

// Station is a weather station. Coordinates are optional.
type Station struct {
	ID        string   `json:"station"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Elevation *float64 `json:"elevation"`
}

// TrailingSpanDays is the length of the "last year" window.
const TrailingSpanDays = 365

// LatestDate returns the maximum observation date. The second result is false
// when obs is empty; callers must not substitute a default date.
func LatestDate(obs []Observation) (Date, bool) {
	if len(obs) == 0 {
		return Date{}, false
	}
	latest := obs[0].Date
	for _, o := range obs[1:] {
		if o.Date.After(latest.Time) {
			latest = o.Date
		}
	}
	return latest, true
}
