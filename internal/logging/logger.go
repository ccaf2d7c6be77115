package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"surfsup-server/internal/config"
)

// Build identifies the running binary in log records.
type Build struct {
	AppName string
	Version string
}

// New returns a colourised tint logger for dev builds and a JSON logger
// otherwise. Output goes to stdout.
func New(cfg config.Config, build Build) *slog.Logger {
	return newWithWriter(os.Stdout, cfg, build)
}

func newWithWriter(w io.Writer, cfg config.Config, build Build) *slog.Logger {
	if build.Version == "dev" {
		h := tint.NewHandler(w, &tint.Options{
			Level:      cfg.LogLevel,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		})
		return slog.New(h).With("app", build.AppName)
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})
	return slog.New(h).With(
		"app", build.AppName,
		"version", build.Version,
		"env", cfg.AppEnv,
	)
}
