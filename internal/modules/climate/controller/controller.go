package controller

import (
	"context"
	"net/http"

	"surfsup-server/internal/climate"
	"surfsup-server/internal/modules/climate/types"
)

// ClimateService is the slice of the service the HTTP layer needs.
type ClimateService interface {
	Precipitation(ctx context.Context) (map[string]*float64, error)
	Stations(ctx context.Context) ([]climate.Station, error)
	TemperatureObservations(ctx context.Context) (types.TemperatureObservations, error)
	TemperatureStats(ctx context.Context, start string, end *string) (types.TemperatureStats, error)
	LatestDate(ctx context.Context) (types.LatestDate, error)
}

type ClimateController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type climateControllerImpl struct {
	service ClimateService
}

func NewClimateController(service ClimateService) ClimateController {
	return &climateControllerImpl{service: service}
}

const apiPrefix = "/api/v1.0"

func (c *climateControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", c.handleHome)
	mux.HandleFunc("GET "+apiPrefix+"/precipitation", c.handlePrecipitation)
	mux.HandleFunc("GET "+apiPrefix+"/stations", c.handleStations)
	mux.HandleFunc("GET "+apiPrefix+"/tobs", c.handleTobs)
	mux.HandleFunc("GET "+apiPrefix+"/latest_date", c.handleLatestDate)
	mux.HandleFunc("GET "+apiPrefix+"/{start}", c.handleTemperatureStats)
	mux.HandleFunc("GET "+apiPrefix+"/{start}/{end}", c.handleTemperatureStats)
}
