package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"surfsup-server/internal/config"
)

func NewServer(cfg config.Config, logger *slog.Logger, handler http.Handler) *http.Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           requestLogger(logger, handler),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}
