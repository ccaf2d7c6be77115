package climate

// Window returns the observations dated on or after ref minus spanDays
// calendar days. The lower bound is inclusive.
func Window(obs []Observation, ref Date, spanDays int) []Observation {
	return RangeFilter(obs, ref.AddDays(-spanDays), nil)
}

// RangeFilter returns the observations with start <= date and, when end is
// non-nil, date <= end. An end before start is not an error: the result is
// simply empty.
func RangeFilter(obs []Observation, start Date, end *Date) []Observation {
	out := make([]Observation, 0, len(obs))
	for _, o := range obs {
		if o.Date.Before(start.Time) {
			continue
		}
		if end != nil && o.Date.After(end.Time) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ForStation keeps only the observations reported by stationID.
func ForStation(obs []Observation, stationID string) []Observation {
	out := make([]Observation, 0, len(obs))
	for _, o := range obs {
		if o.StationID == stationID {
			out = append(out, o)
		}
	}
	return out
}

// PrecipitationByDate maps each date to its precipitation reading. Several
// stations may report on the same date and the key holds only one of them: the
// reading from the greatest station id wins, whatever the input order.
func PrecipitationByDate(obs []Observation) map[string]*float64 {
	out := make(map[string]*float64, len(obs))
	owner := make(map[string]string, len(obs))
	for _, o := range obs {
		key := o.Date.String()
		if prev, ok := owner[key]; ok && prev > o.StationID {
			continue
		}
		owner[key] = o.StationID
		out[key] = o.Precipitation
	}
	return out
}
