package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faraday-ai/faraday-web/storage"
)

func newMigrateCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long:  "Opens the database, applies any pending goose migrations, and reports the resulting schema version.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(dbPath)
			if err != nil {
				return err
			}

			// storage.New applies pending migrations on open.
			store, err := storage.New(config.DBPath)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			defer store.Close()

			version, err := store.MigrationVersion()
			if err != nil {
				return err
			}

			fmt.Printf("Database %s is at schema version %d\n", config.DBPath, version)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database path (overrides DB_PATH)")
	return cmd
}
