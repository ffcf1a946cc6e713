package system

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/dental_backend/internal/repo/postgres"
	"github.com/Alijeyrad/dental_backend/pkg/database"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long: `Apply the clinic schema (clients, services, appointments and their
service links). Statements are idempotent, so running it again is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cfg)
			defer cancel()

			drv, err := database.NewDriver(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer drv.Close()

			fmt.Println("Running migrations...")
			if err := postgres.Migrate(ctx, drv); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Println("Migrations executed successfully.")
			return nil
		},
	}

	return cmd
}
