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

	"github.com/faraday-ai/faraday-web/internal/middleware"
	"github.com/faraday-ai/faraday-web/service"
	"github.com/faraday-ai/faraday-web/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// slog is configured in slog.go via init()

	config, err := service.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := storage.New(config.DBPath)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc.StartBackgroundJobs(ctx)

	go func() {
		addr := fmt.Sprintf(":%s", config.Port)
		slog.Info("Faraday AI starting",
			"url", fmt.Sprintf("http://localhost:%s", config.Port),
			"port", config.Port,
			"environment", config.Environment,
			"database", config.DBPath,
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
