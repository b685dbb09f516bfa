package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// VisitorCookieName identifies a browser across visits, independent of
	// any signed-in session.
	VisitorCookieName = "faraday_visitor"

	// VisitorIDKey is the context key the request logger reads.
	VisitorIDKey = "visitor_id"

	visitorCookieMaxAge = int(365 * 24 * time.Hour / time.Second)
)

// VisitorID assigns each browser a stable anonymous ID so request logs can
// be correlated without a user account. The cookie carries no identity and
// is never stored server-side.
func VisitorID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(VisitorCookieName); err == nil && cookie.Value != "" {
				c.Set(VisitorIDKey, cookie.Value)
				return next(c)
			}

			id := uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     VisitorCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   visitorCookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(VisitorIDKey, id)
			return next(c)
		}
	}
}
