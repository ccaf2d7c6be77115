package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"surfsup-server/internal/climate"
)

//go:embed sql/get-observations.sql
var getObservationsSQL string

//go:embed sql/get-stations.sql
var getStationsSQL string

// ClimateRepository hands out storage sessions. Each request opens one
// session and closes it before responding.
type ClimateRepository interface {
	Open(ctx context.Context) (Session, error)
}

// Session is a read-only view of the dataset bound to one pooled connection.
type Session interface {
	AllObservations(ctx context.Context) ([]climate.Observation, error)
	AllStations(ctx context.Context) ([]climate.Station, error)
	Close() error
}

type repositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) ClimateRepository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Open(ctx context.Context) (Session, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return &sessionImpl{conn: conn}, nil
}

type sessionImpl struct {
	conn *sql.Conn
}

func (s *sessionImpl) Close() error {
	return s.conn.Close()
}

// AllObservations returns every measurement ordered by date then station.
func (s *sessionImpl) AllObservations(ctx context.Context) ([]climate.Observation, error) {
	rows, err := s.conn.QueryContext(ctx, getObservationsSQL)
	if err != nil {
		return nil, fmt.Errorf("query observations: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close observations rows", "error", err)
		}
	}()

	var out []climate.Observation
	for rows.Next() {
		var (
			o          climate.Observation
			date       string
			prcp, tobs sql.NullFloat64
		)
		if err := rows.Scan(&o.StationID, &date, &prcp, &tobs); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		o.Date, err = climate.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("observation %s: stored date %q: %w", o.StationID, date, err)
		}
		o.Precipitation = nullableFloat(prcp)
		o.Temperature = nullableFloat(tobs)
		out = append(out, o)
	}
	return out, rows.Err()
}

// AllStations returns every station ordered by station id.
func (s *sessionImpl) AllStations(ctx context.Context) ([]climate.Station, error) {
	rows, err := s.conn.QueryContext(ctx, getStationsSQL)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close stations rows", "error", err)
		}
	}()

	var out []climate.Station
	for rows.Next() {
		var (
			st             climate.Station
			lat, lng, elev sql.NullFloat64
		)
		if err := rows.Scan(&st.ID, &st.Name, &lat, &lng, &elev); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		st.Latitude = nullableFloat(lat)
		st.Longitude = nullableFloat(lng)
		st.Elevation = nullableFloat(elev)
		out = append(out, st)
	}
	return out, rows.Err()
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
