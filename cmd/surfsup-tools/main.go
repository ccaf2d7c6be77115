package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"surfsup-server/internal/config"
	"surfsup-server/internal/db"
	"surfsup-server/internal/logging"
	"surfsup-server/internal/migrate"
	"surfsup-server/internal/modules/climate/repository"
	"surfsup-server/internal/modules/climate/service"
)

const appName = "surfsup-tools"

var version = "dev"

const usage = `usage: %s <command>
  migrate  create or update the schema at SQLITE_PATH
  inspect  print a summary of the dataset at SQLITE_PATH
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, usage, os.Args[0])
		os.Exit(1)
	}
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "dotenv error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(cfg, logging.Build{AppName: appName, Version: version}))

	if err := run(context.Background(), os.Args[1], cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, cfg config.Config, out io.Writer) error {
	switch command {
	case "migrate":
		// Migrations write, whatever DB_READ_ONLY says.
		cfg.ReadOnly = false
		return withDB(cfg, func(conn *sql.DB) error {
			ran, err := migrate.Run(ctx, conn)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "migrations applied: %d\n", len(ran))
			return err
		})
	case "inspect":
		return withDB(cfg, func(conn *sql.DB) error {
			summary, err := service.NewService(repository.NewRepository(conn)).Summarize(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out,
				"observations: %d\nstations: %d\nlatest date: %s\nmost active station: %s\n",
				summary.Observations, summary.Stations, summary.LatestDate, summary.MostActiveStation,
			)
			return err
		})
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func withDB(cfg config.Config, fn func(*sql.DB) error) error {
	conn, err := db.Open(cfg, slog.Default())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(conn); closeErr != nil {
			slog.Error("db close", "err", closeErr)
		}
	}()
	return fn(conn)
}
