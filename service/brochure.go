package service

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/faraday-ai/faraday-web/internal/brochure"
	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/faraday-ai/faraday-web/views/layout"
)

// handleServiceBrochure streams the one-page PDF handout for a service.
// The PDF is generated per request; at handout volume that is cheaper than
// keeping rendered copies in sync with the catalog.
func (s *Service) handleServiceBrochure(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	svc, err := s.storage.Queries.GetServiceBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Service not found")
		}
		slog.Error("failed to fetch service for brochure", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load service")
	}

	features, err := s.storage.Queries.ListServiceFeatures(ctx, svc.ID)
	if err != nil {
		slog.Error("failed to fetch features for brochure", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load service")
	}

	info := brochure.Info{
		Name:        svc.Name,
		Tagline:     svc.Tagline,
		Description: svc.Description,
		ComingSoon:  svc.Status == db.ServiceStatusComingSoon,
		PageURL:     layout.BuildAbsoluteURL(s.config.BaseURL, "/services/"+svc.Slug),
		SiteName:    siteName(ctx, s.storage.Queries),
		ContactLine: fmt.Sprintf("Questions? Write to %s", s.config.Email.AdminEmail),
	}
	for _, f := range features {
		info.Features = append(info.Features, brochure.Feature{Title: f.Title, Detail: f.Detail})
	}

	var buf bytes.Buffer
	if err := brochure.Generate(info, &buf); err != nil {
		slog.Error("failed to generate brochure", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate brochure")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s-brochure.pdf"`, svc.Slug))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
