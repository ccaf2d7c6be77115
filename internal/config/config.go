package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	AppEnv   string `validate:"oneof=dev prod"`
	LogLevel slog.Level
	HTTPAddr string `validate:"required"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `validate:"gt=0"`

	Driver          string        `validate:"required"`
	DSN             string
	Path            string        `validate:"required_without=DSN"`
	MaxOpenConns    int           `validate:"gte=0"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	// ReadOnly opens the database with mode=ro. The dataset is never written
	// by the server.
	ReadOnly bool
	// LogSQL logs every statement at debug level.
	LogSQL bool
}

// LoadDotEnv loads variables from the given .env files (default ".env") into
// the process environment without overriding variables that are already set.
// A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	shutdownTimeout, err := durationFromEnv("HTTP_SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	driver := strings.TrimSpace(os.Getenv("DB_DRIVER"))
	if driver == "" {
		driver = "sqlite3"
	}
	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	path := strings.TrimSpace(os.Getenv("SQLITE_PATH"))
	if path == "" {
		path = "Resources/hawaii.sqlite"
	}

	maxOpenConns, err := intFromEnv("DB_MAX_OPEN_CONNS", "4")
	if err != nil {
		return Config{}, err
	}
	maxIdleConns, err := intFromEnv("DB_MAX_IDLE_CONNS", "4")
	if err != nil {
		return Config{}, err
	}
	connMaxLifetime, err := durationFromEnv("DB_CONN_MAX_LIFETIME", "0s")
	if err != nil {
		return Config{}, err
	}

	readOnly, err := boolFromEnv("DB_READ_ONLY", "true")
	if err != nil {
		return Config{}, err
	}
	logSQL, err := boolFromEnv("DB_LOG_SQL", "false")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:          appEnv,
		LogLevel:        level,
		HTTPAddr:        httpAddr,
		ShutdownTimeout: shutdownTimeout,
		Driver:          driver,
		DSN:             dsn,
		Path:            path,
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
		ReadOnly:        readOnly,
		LogSQL:          logSQL,
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func intFromEnv(key, def string) (int, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		s = def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return n, nil
}

func durationFromEnv(key, def string) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		s = def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return d, nil
}

func boolFromEnv(key, def string) (bool, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		s = def
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return b, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
