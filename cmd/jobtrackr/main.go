package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/jobtrackr/jobtrackr-api/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting jobtrackr API",
		"db_host", cfg.Postgres.Host,
		"db_port", cfg.Postgres.Port,
		"db_name", cfg.Postgres.Name,
		"auth_mode", cfg.Auth.Mode,
		"identity_cache", cfg.Redis.Enabled)

	db, err := bootstrap.ConnectDB(cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()

	if cfg.Postgres.RunMigrationsOnStart {
		if err = bootstrap.RunMigrations(ctx, db, logger); err != nil {
			return err
		}
	} else {
		logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
	}

	deps := bootstrap.ServiceDeps{Config: &cfg, DB: db, Logger: logger}
	if cfg.Redis.Enabled {
		redisClient, redisErr := bootstrap.ConnectRedis(cfg.Redis, logger)
		if redisErr != nil {
			return redisErr
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
		deps.RedisClient = redisClient
	}

	services, err := bootstrap.BuildServices(ctx, deps)
	if err != nil {
		return err
	}

	server, err := bootstrap.NewHTTPServer(cfg.HTTP, services, logger)
	if err != nil {
		return err
	}

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(signalCtx)
	g.Go(server.Serve)
	g.Go(func() error {
		<-gctx.Done()
		return server.Shutdown()
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.InfoContext(ctx, "jobtrackr API stopped")
	return nil
}
