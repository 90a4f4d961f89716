package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchenpos/cmd"
	"kitchenpos/internal/adapters/out/postgres/migrations"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "kitchenpos",
		Usage: "point of sale backend for eat-in orders",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "optional .env files loaded before the environment is read",
				Value: cli.NewStringSlice(".env"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API and the outbox relay",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations",
				Action: migrate,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "down", Usage: "revert every migration instead"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func setup(c *cli.Context) (cmd.Config, *zap.Logger, error) {
	cfg, err := cmd.LoadConfig(c.StringSlice("env-file")...)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return cmd.Config{}, nil, err
	}
	return cfg, logger, nil
}

func migrate(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if c.Bool("down") {
		if err = migrations.Down(cfg.DSN()); err != nil {
			return err
		}
		logger.Info("Migrations reverted")
		return nil
	}

	applied, err := migrations.Up(cfg.DSN())
	if err != nil {
		return err
	}
	logger.Info("Migrations applied", zap.Bool("changed", applied))
	return nil
}

func serve(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return err
	}

	root, err := cmd.NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := root.Close(); closeErr != nil {
			logger.Warn("Failed to close connections", zap.Error(closeErr))
		}
	}()

	router, err := root.NewRouter(ctx)
	if err != nil {
		return err
	}

	jobManager := root.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", zap.String("addr", cfg.HTTPAddr()))
		serverErr <- router.Start(cfg.HTTPAddr())
	}()

	select {
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return router.Shutdown(shutdownCtx)
}
