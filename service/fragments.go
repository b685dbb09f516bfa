package service

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/faraday-ai/faraday-web/views/partials"
)

// Fragment endpoints return bare partials for the client-side loaders. No
// layout, no session: the script injects the body straight into the mount
// point already on the page.

// handleAuthModalFragment serves the auth card. The tab parameter picks which
// pane starts active; anything unrecognized falls back to the login tab.
func (s *Service) handleAuthModalFragment(c echo.Context) error {
	tab := partials.NormalizeAuthTab(c.QueryParam("tab"))
	return renderFragment(c, partials.AuthModal(tab))
}

// handleComingSoonFragment serves the placeholder card for features that are
// not built yet, named after whatever the visitor clicked.
func (s *Service) handleComingSoonFragment(c echo.Context) error {
	feature := strings.TrimSpace(c.QueryParam("feature"))
	if feature == "" {
		feature = "This feature"
	}
	return renderFragment(c, partials.ComingSoon(feature))
}

// renderFragment writes a partial as a standalone HTML response. It renders
// to a buffer first so a failure never leaks half a fragment; the client
// logs anything but a 200 to the console and leaves the modal empty.
func renderFragment(c echo.Context, node g.Node) error {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		slog.Error("failed to render fragment", "error", err, "path", c.Path())
		return c.NoContent(http.StatusInternalServerError)
	}
	return c.HTML(http.StatusOK, buf.String())
}
