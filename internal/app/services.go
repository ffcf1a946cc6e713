package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Alijeyrad/dental_backend/config"
	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/internal/seed"
	"github.com/Alijeyrad/dental_backend/internal/service/appointment"
	"github.com/Alijeyrad/dental_backend/internal/service/catalog"
	"github.com/Alijeyrad/dental_backend/internal/service/client"
	"github.com/Alijeyrad/dental_backend/pkg/events"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAppointmentService,
		ProvideClientService,
		ProvideCatalogService,
		ProvideSeeder,
	),
	fx.Invoke(SeedOnStart),
)

func ProvideAppointmentService(store repo.Store, pub events.Publisher) appointment.Service {
	return appointment.New(store, pub)
}

func ProvideClientService(store repo.Store) client.Service {
	return client.New(store)
}

func ProvideCatalogService(store repo.Store) catalog.Service {
	return catalog.New(store)
}

func ProvideSeeder(store repo.Store, cat catalog.Service, cl client.Service, appts appointment.Service) *seed.Seeder {
	return seed.New(store, cat, cl, appts)
}

// SeedOnStart loads the demo data before the server accepts requests when
// storage.seed_on_start is set. Seeding failures are logged, not fatal.
func SeedOnStart(lc fx.Lifecycle, cfg *config.Config, s *seed.Seeder) {
	if !cfg.Storage.SeedOnStart {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := s.Run(ctx); err != nil {
				slog.Warn("seeding finished with errors", "error", err)
			}
			return nil
		},
	})
}
