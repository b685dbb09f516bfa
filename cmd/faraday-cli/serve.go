package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/faraday-ai/faraday-web/internal/middleware"
	"github.com/faraday-ai/faraday-web/service"
	"github.com/faraday-ai/faraday-web/storage"
)

func newServeCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(dbPath)
			if err != nil {
				return err
			}

			store, err := storage.New(config.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer store.Close()

			e := echo.New()
			e.HideBanner = true
			e.HidePort = true
			e.Use(echomw.Recover())
			e.Use(middleware.VisitorID())
			e.Use(middleware.RequestLogger())
			e.Use(middleware.SecurityHeaders())

			svc := service.New(store, config)
			svc.RegisterRoutes(e)
			defer svc.Shutdown()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc.StartBackgroundJobs(ctx)

			go func() {
				slog.Info("Faraday AI starting", "port", config.Port, "environment", config.Environment)
				if err := e.Start(":" + config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server failed", "error", err)
					stop()
				}
			}()

			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database path (overrides DB_PATH)")
	return cmd
}
