package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuzvak/nhh-storefront/internal/infrastructure/persistence/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer conn.Close()

		applied, err := postgres.RunMigrations(cmd.Context(), conn, cfg.Database.MigrationsPath, log)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
		return nil
	},
}
