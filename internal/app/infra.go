package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/dental_backend/config"
	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/internal/repo/memory"
	"github.com/Alijeyrad/dental_backend/internal/repo/postgres"
	"github.com/Alijeyrad/dental_backend/pkg/constants"
	"github.com/Alijeyrad/dental_backend/pkg/database"
	"github.com/Alijeyrad/dental_backend/pkg/events"
	"github.com/Alijeyrad/dental_backend/pkg/observability"
	redispkg "github.com/Alijeyrad/dental_backend/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideStore),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideNatsClient),
	fx.Provide(ProvideEventPublisher),
	fx.Provide(ProvideOTel),
)

// OpenStore opens the store selected by storage.driver. The postgres
// schema is applied first when database.migrations.auto_migrate is set.
func OpenStore(ctx context.Context, cfg *config.Config) (repo.Store, error) {
	switch cfg.Storage.Driver {
	case constants.StorageDriverMemory:
		return memory.New(), nil
	case constants.StorageDriverPostgres:
		drv, err := database.NewDriver(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.Migrations.AutoMigrate {
			if err := postgres.Migrate(ctx, drv); err != nil {
				drv.Close()
				return nil, err
			}
			slog.Info("database schema applied")
		}
		return postgres.New(drv), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func ProvideStore(lc fx.Lifecycle, cfg *config.Config) (repo.Store, error) {
	store, err := OpenStore(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing store", "driver", cfg.Storage.Driver)
			return store.Close()
		},
	})
	return store, nil
}

// ProvideRedis returns nil when redis is disabled.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	rdb, err := redispkg.NewRedisFromCentral(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

// ProvideNatsClient returns nil when events are disabled.
func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	if !cfg.Events.Enabled {
		return nil, nil
	}
	nc, err := events.Connect(cfg.Events.NatsURL, cfg.Observability.ServiceName)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

func ProvideEventPublisher(cfg *config.Config, nc *nats.Conn) events.Publisher {
	if nc == nil {
		return events.Nop()
	}
	return events.NewNATS(nc, cfg.Events.SubjectPrefix)
}

// ProvideOTel returns nil when observability is disabled.
func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(),
		observability.FromCentralConfig(cfg.Observability, cfg.Server.Environment))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
