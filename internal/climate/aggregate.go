package climate

// MostActiveStation returns the station with the most observations. Ties go
// to the lexicographically smallest station id. The second result is false
// for empty input.
func MostActiveStation(obs []Observation) (string, bool) {
	counts := make(map[string]int)
	for _, o := range obs {
		counts[o.StationID]++
	}

	best, bestCount := "", 0
	for id, n := range counts {
		if n > bestCount || (n == bestCount && id < best) {
			best, bestCount = id, n
		}
	}
	return best, bestCount > 0
}

// Stats is the min/avg/max summary of a column.
type Stats struct {
	Min float64
	Avg float64
	Max float64
}

// Aggregate summarises the non-nil values. The second result is false when
// no value is present; absent readings never count as zero.
func Aggregate(values []*float64) (Stats, bool) {
	var (
		s   Stats
		sum float64
		n   int
	)
	for _, v := range values {
		if v == nil {
			continue
		}
		if n == 0 || *v < s.Min {
			s.Min = *v
		}
		if n == 0 || *v > s.Max {
			s.Max = *v
		}
		sum += *v
		n++
	}
	if n == 0 {
		return Stats{}, false
	}
	s.Avg = sum / float64(n)
	return s, true
}

// Temperatures projects the temperature column.
func Temperatures(obs []Observation) []*float64 {
	out := make([]*float64, len(obs))
	for i, o := range obs {
		out[i] = o.Temperature
	}
	return out
}

// Precipitations projects the precipitation column.
func Precipitations(obs []Observation) []*float64 {
	out := make([]*float64, len(obs))
	for i, o := range obs {
		out[i] = o.Precipitation
	}
	return out
}
