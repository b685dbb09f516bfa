package main

import (
	"fmt"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/faraday-ai/faraday-web/service"
	"github.com/faraday-ai/faraday-web/storage"
)

func newRoutesCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every registered route",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(dbPath)
			if err != nil {
				return err
			}

			store, err := storage.New(config.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer store.Close()

			e := echo.New()
			svc := service.New(store, config)
			svc.RegisterRoutes(e)
			defer svc.Shutdown()

			routes := e.Routes()
			sort.Slice(routes, func(i, j int) bool {
				if routes[i].Path != routes[j].Path {
					return routes[i].Path < routes[j].Path
				}
				return routes[i].Method < routes[j].Method
			})

			for _, r := range routes {
				fmt.Printf("%-7s %s\n", r.Method, r.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database path (overrides DB_PATH)")
	return cmd
}
