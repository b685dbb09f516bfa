// faraday-cli is the maintenance companion to the faraday-web server:
// migrations, seed data, social-card rendering, and a route listing, all
// against the same storage layer the server uses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faraday-ai/faraday-web/service"
)

func main() {
	root := &cobra.Command{
		Use:           "faraday-cli",
		Short:         "Operate the Faraday AI web service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newOGImagesCmd(),
		newRoutesCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig is shared by every subcommand; flags override the environment.
func loadConfig(dbPath string) (*service.Config, error) {
	config, err := service.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if dbPath != "" {
		config.DBPath = dbPath
	}
	return config, nil
}
