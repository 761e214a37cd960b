package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	recipesApiFactory "github.com/gmaschi/go-recipes-api/internal/factories/recipes-api-factory"
	"github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/migration"
	db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-api/pkg/config/env"
	"github.com/gmaschi/go-recipes-api/pkg/logging"
	_ "github.com/lib/pq"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the HTTP API until interrupted",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "Apply the database schema before serving",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			conn, err := sql.Open(config.DbDriver, config.DbSource)
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}
			defer conn.Close()

			if cmd.Bool("migrate") {
				if err := migration.Up(ctx, conn); err != nil {
					return err
				}
			}

			store := db.NewStore(conn)
			server, err := recipesApiFactory.New(config, store)
			if err != nil {
				return fmt.Errorf("could not start server: %w", err)
			}

			if err := server.Start(ctx, config.ServerAddress); err != nil {
				return fmt.Errorf("server error: %w", err)
			}

			slog.Info("server stopped gracefully")
			return nil
		},
	}
}

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the embedded database schema",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			conn, err := sql.Open(config.DbDriver, config.DbSource)
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}
			defer conn.Close()

			return migration.Up(ctx, conn)
		},
	}
}

func waitForDBCmd() *cli.Command {
	return &cli.Command{
		Name:  "wait-for-db",
		Usage: "Block until the database accepts connections",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Value: time.Minute,
				Usage: "Give up after this long",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Value: time.Second,
				Usage: "Delay between attempts",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			conn, err := sql.Open(config.DbDriver, config.DbSource)
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}
			defer conn.Close()

			return waitForDB(ctx, conn, cmd.Duration("timeout"), cmd.Duration("interval"))
		},
	}
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// waitForDB pings the database every interval until it answers or timeout elapses
func waitForDB(ctx context.Context, conn pinger, timeout, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		err := conn.PingContext(ctx)
		if err == nil {
			slog.Info("database available", slog.Int("attempts", attempt))
			return nil
		}
		slog.Info("database unavailable, waiting", slog.Int("attempt", attempt), slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return fmt.Errorf("database not available after %s: %w", timeout, err)
		case <-ticker.C:
		}
	}
}

func loadConfig(cmd *cli.Command) (env.Config, error) {
	config, err := env.LoadConfig(cmd.String("config"))
	if err != nil {
		return env.Config{}, fmt.Errorf("cannot load config: %w", err)
	}
	logging.SetDefault(config.Log)
	return config, nil
}
