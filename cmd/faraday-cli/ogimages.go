package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faraday-ai/faraday-web/internal/jobs"
	"github.com/faraday-ai/faraday-web/storage"
)

func newOGImagesCmd() *cobra.Command {
	var (
		dbPath string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "og-images",
		Short: "Render the social sharing cards for every page",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(dbPath)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = config.OGImage.Dir
			}

			store, err := storage.New(config.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer store.Close()

			job := jobs.NewOGImageWarmup(store, "Faraday AI", outDir)
			job.Run(cmd.Context())

			fmt.Printf("Cards written to %s\n", outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database path (overrides DB_PATH)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default OG_IMAGE_DIR)")
	return cmd
}
