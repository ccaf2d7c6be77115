package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"surfsup-server/internal/climate"
	"surfsup-server/internal/modules/climate/repository"
	"surfsup-server/internal/modules/climate/types"
)

// Service answers the climate endpoints. Every call opens its own storage
// session and works on a snapshot of the full dataset.
type Service struct {
	repository repository.ClimateRepository
}

func NewService(repository repository.ClimateRepository) *Service {
	return &Service{repository: repository}
}

// withSession opens a session for one request and always closes it.
func (s *Service) withSession(ctx context.Context, fn func(repository.Session) error) (err error) {
	sess, err := s.repository.Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := sess.Close(); closeErr != nil {
			slog.Error("close storage session", "error", closeErr)
			err = errors.Join(err, closeErr)
		}
	}()
	return fn(sess)
}

func (s *Service) observations(ctx context.Context) ([]climate.Observation, error) {
	var obs []climate.Observation
	err := s.withSession(ctx, func(sess repository.Session) error {
		var err error
		obs, err = sess.AllObservations(ctx)
		return err
	})
	return obs, err
}

func latest(obs []climate.Observation) (climate.Date, error) {
	d, ok := climate.LatestDate(obs)
	if !ok {
		return climate.Date{}, climate.ErrEmptyDataset
	}
	return d, nil
}

// Precipitation returns the trailing-year precipitation keyed by date.
func (s *Service) Precipitation(ctx context.Context) (map[string]*float64, error) {
	obs, err := s.observations(ctx)
	if err != nil {
		return nil, err
	}
	ref, err := latest(obs)
	if err != nil {
		return nil, err
	}
	return climate.PrecipitationByDate(climate.Window(obs, ref, climate.TrailingSpanDays)), nil
}

func (s *Service) Stations(ctx context.Context) ([]climate.Station, error) {
	var stations []climate.Station
	err := s.withSession(ctx, func(sess repository.Session) error {
		var err error
		stations, err = sess.AllStations(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if stations == nil {
		stations = []climate.Station{}
	}
	return stations, nil
}

// TemperatureObservations returns the trailing-year temperature series of the
// station with the most observations. The window ends at the dataset's latest
// date, not the station's.
func (s *Service) TemperatureObservations(ctx context.Context) (types.TemperatureObservations, error) {
	obs, err := s.observations(ctx)
	if err != nil {
		return types.TemperatureObservations{}, err
	}
	station, ok := climate.MostActiveStation(obs)
	if !ok {
		return types.TemperatureObservations{}, climate.ErrEmptyDataset
	}
	ref, err := latest(obs)
	if err != nil {
		return types.TemperatureObservations{}, err
	}

	start := ref.AddDays(-climate.TrailingSpanDays)
	window := climate.ForStation(climate.Window(obs, ref, climate.TrailingSpanDays), station)
	out := types.TemperatureObservations{
		Station:      station,
		StartDate:    start,
		EndDate:      ref,
		Observations: make([]types.TemperatureObservation, 0, len(window)),
	}
	for _, o := range window {
		out.Observations = append(out.Observations, types.TemperatureObservation{Date: o.Date, Tobs: o.Temperature})
	}
	return out, nil
}

// TemperatureStats aggregates temperatures from start through end inclusive.
// A nil end leaves the range open. Invalid dates are reported as *climate.DateError
// before storage is touched.
func (s *Service) TemperatureStats(ctx context.Context, start string, end *string) (types.TemperatureStats, error) {
	startDate, err := climate.ParseDate(start)
	if err != nil {
		return types.TemperatureStats{}, &climate.DateError{Field: "start", Value: start}
	}
	var endDate *climate.Date
	if end != nil {
		d, err := climate.ParseDate(*end)
		if err != nil {
			return types.TemperatureStats{}, &climate.DateError{Field: "end", Value: *end}
		}
		endDate = &d
	}

	obs, err := s.observations(ctx)
	if err != nil {
		return types.TemperatureStats{}, err
	}
	stats, ok := climate.Aggregate(climate.Temperatures(climate.RangeFilter(obs, startDate, endDate)))
	if !ok {
		return types.TemperatureStats{}, fmt.Errorf("temperatures from %s: %w", start, climate.ErrNoDataFound)
	}
	return types.TemperatureStats{TMIN: stats.Min, TAVG: stats.Avg, TMAX: stats.Max}, nil
}

func (s *Service) LatestDate(ctx context.Context) (types.LatestDate, error) {
	obs, err := s.observations(ctx)
	if err != nil {
		return types.LatestDate{}, err
	}
	d, err := latest(obs)
	if err != nil {
		return types.LatestDate{}, err
	}
	return types.LatestDate{LatestDate: d}, nil
}

// Summary describes the loaded dataset. It backs startup verification and the
// inspect tool.
type Summary struct {
	Observations      int
	Stations          int
	LatestDate        climate.Date
	MostActiveStation string
}

// Summarize loads observations and stations concurrently, each on its own
// session, and fails with climate.ErrEmptyDataset when there are no
// observations.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		obs      []climate.Observation
		stations []climate.Station
	)
	g.Go(func() error {
		var err error
		obs, err = s.observations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stations, err = s.Stations(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	ref, err := latest(obs)
	if err != nil {
		return Summary{}, err
	}
	station, _ := climate.MostActiveStation(obs)
	return Summary{
		Observations:      len(obs),
		Stations:          len(stations),
		LatestDate:        ref,
		MostActiveStation: station,
	}, nil
}
