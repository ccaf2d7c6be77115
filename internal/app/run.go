package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"surfsup-server/internal/config"
	"surfsup-server/internal/db"
	"surfsup-server/internal/httpapi"
	climate "surfsup-server/internal/modules/climate"
	climateviews "surfsup-server/internal/modules/climate/views"
)

// App is a ready-to-serve process: an open database whose dataset has been
// verified and the routed handler over it.
type App struct {
	DB      *sql.DB
	Handler http.Handler
}

// New opens the database, loads templates, registers routes and verifies the
// dataset. A dataset without observations fails with climate.ErrEmptyDataset.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"dbDriver", cfg.Driver,
		"sqlitePath", cfg.Path,
		"dbReadOnly", cfg.ReadOnly,
		"dbMaxOpenConns", cfg.MaxOpenConns,
		"dbMaxIdleConns", cfg.MaxIdleConns,
		"dbConnMaxLifetime", cfg.ConnMaxLifetime,
		"dbLogSQL", cfg.LogSQL,
	)

	dbConn, err := db.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := climateviews.LoadTemplates(); err != nil {
		_ = db.Close(dbConn)
		return nil, fmt.Errorf("load templates: %w", err)
	}

	mux := httpapi.NewMux(dbConn)
	svc := climate.RegisterFeature(mux, dbConn)

	summary, err := svc.Summarize(ctx)
	if err != nil {
		_ = db.Close(dbConn)
		return nil, fmt.Errorf("verify dataset: %w", err)
	}
	logger.Info("dataset loaded",
		"observations", summary.Observations,
		"stations", summary.Stations,
		"latestDate", summary.LatestDate.String(),
		"mostActiveStation", summary.MostActiveStation,
	)

	return &App{DB: dbConn, Handler: mux}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}

// Run serves until ctx is cancelled, then shuts down within cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			logger.Error("db close", "error", closeErr)
		}
	}()

	srv := httpapi.NewServer(cfg, logger, a.Handler)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	logger.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
