package system

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/dental_backend/internal/app"
	"github.com/Alijeyrad/dental_backend/internal/seed"
	"github.com/Alijeyrad/dental_backend/internal/service/appointment"
	"github.com/Alijeyrad/dental_backend/internal/service/catalog"
	"github.com/Alijeyrad/dental_backend/internal/service/client"
	"github.com/Alijeyrad/dental_backend/pkg/events"
	"github.com/Alijeyrad/dental_backend/pkg/logs"
)

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo services, clients and appointments",
		Long: `Load the demo catalog, clients and appointments. Services are matched by
name and clients by email, so existing rows are kept. Appointments are only
created while the appointment table is empty.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}
			slog.SetDefault(logs.New(cfg))

			ctx, cancel := commandContext(cfg)
			defer cancel()

			store, err := app.OpenStore(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer store.Close()

			s := seed.New(store,
				catalog.New(store),
				client.New(store),
				appointment.New(store, events.Nop()),
			)
			res, err := s.Run(ctx)
			fmt.Printf("Seeding completed: %d services, %d clients, %d appointments created.\n",
				res.Services, res.Clients, res.Appointments)
			if err != nil {
				return fmt.Errorf("seeding finished with errors: %w", err)
			}
			return nil
		},
	}

	return cmd
}
