package types

import "surfsup-server/internal/climate"

// TemperatureStats is the body of the start and start/end range endpoints.
type TemperatureStats struct {
	TMIN float64 `json:"TMIN"`
	TAVG float64 `json:"TAVG"`
	TMAX float64 `json:"TMAX"`
}

type TemperatureObservation struct {
	Date climate.Date `json:"date"`
	Tobs *float64     `json:"tobs"`
}

// TemperatureObservations is the trailing-year series of the most active station.
type TemperatureObservations struct {
	Station      string                   `json:"station"`
	StartDate    climate.Date             `json:"start_date"`
	EndDate      climate.Date             `json:"end_date"`
	Observations []TemperatureObservation `json:"observations"`
}

type LatestDate struct {
	LatestDate climate.Date `json:"latest_date"`
}
