package service

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/faraday-ai/faraday-web/views/admin"
	"github.com/faraday-ai/faraday-web/views/layout"
)

// adminListLimit caps the recent-items tables on the dashboard.
const adminListLimit = 10

func (s *Service) handleAdminDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var data admin.Dashboard
	var err error

	if data.UserCount, err = s.storage.Queries.CountUsers(ctx); err != nil {
		slog.Error("failed to count users", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}
	if data.WaitlistCount, err = s.storage.Queries.CountWaitlistSignups(ctx); err != nil {
		slog.Error("failed to count waitlist signups", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}
	if data.ContactCount, err = s.storage.Queries.CountContactRequests(ctx); err != nil {
		slog.Error("failed to count contact requests", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}

	// The tables are nice-to-have; an empty section beats a dead dashboard.
	if data.Signups, err = s.storage.Queries.ListRecentWaitlistSignups(ctx, adminListLimit); err != nil {
		slog.Error("failed to list recent waitlist signups", "error", err)
	}
	if data.Contacts, err = s.storage.Queries.ListRecentContactRequests(ctx, adminListLimit); err != nil {
		slog.Error("failed to list recent contact requests", "error", err)
	}
	if data.Activity, err = s.storage.Queries.ListRecentActivity(ctx, adminListLimit); err != nil {
		slog.Error("failed to list recent activity", "error", err)
	}

	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL).WithTitle("Admin")
	return Render(c, admin.Index(c, s.shell(c, meta), data))
}
