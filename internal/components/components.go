package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ACBRI/veritas.ia/internal/api"
	"github.com/ACBRI/veritas.ia/internal/config"
	"github.com/ACBRI/veritas.ia/internal/hub"
	"github.com/ACBRI/veritas.ia/internal/ratelimit"
	"github.com/ACBRI/veritas.ia/internal/service"
	"github.com/ACBRI/veritas.ia/internal/storage/postgres"
	"github.com/ACBRI/veritas.ia/internal/storage/redis"
	"github.com/ACBRI/veritas.ia/pkg/logger"
)

// Components holds every process-wide singleton. Everything is constructed
// explicitly here at startup and torn down in ShutdownAll, never via
// package-level init.
type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Hub        *hub.Hub
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	limiter := ratelimit.New(redisClient.Client, logger,
		cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, cfg.RateLimit.FailOpen)

	liveHub := hub.New(logger, cfg.Hub.HeartbeatInterval, cfg.Hub.SendBuffer)

	offenseCache := redis.NewOffenseTypeCache(redisClient)

	reportSvc := service.NewReportService(limiter, storage.Reports(), liveHub, logger)
	catalogSvc := service.NewCatalogService(storage.OffenseTypes(), offenseCache, logger)

	srv := api.NewServer(cfg, logger, service.NewService(reportSvc, catalogSvc), liveHub)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: srv,
		Postgres:   storage,
		Redis:      redisClient,
		Hub:        liveHub,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	// drain live subscribers before the stores they may still be writing to
	c.Hub.Shutdown()

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
