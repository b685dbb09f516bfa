package auth

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/faraday-ai/faraday-web/storage"
	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/labstack/echo/v4"
)

// Context keys for storing auth data
const (
	DBUserKey          = "db_user"
	IsAuthenticatedKey = "is_authenticated"
)

// LoadUser resolves the session cookie to a database user on every request.
// This middleware is OPTIONAL - it allows unauthenticated requests through.
func LoadUser(store *storage.Storage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := sessionUserID(c)
			if !ok {
				c.Set(IsAuthenticatedKey, false)
				return next(c)
			}

			user, err := store.Queries.GetUserByID(c.Request().Context(), userID)
			if err != nil {
				// A session pointing at a deleted user is stale; drop it.
				if errors.Is(err, sql.ErrNoRows) {
					_ = SignOut(c)
				} else {
					slog.Error("failed to load session user", "error", err, "user_id", userID)
				}
				c.Set(IsAuthenticatedKey, false)
				return next(c)
			}

			c.Set(DBUserKey, &user)
			c.Set(IsAuthenticatedKey, true)
			return next(c)
		}
	}
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAuth, _ := c.Get(IsAuthenticatedKey).(bool)
			if !isAuth {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// RequireAdmin middleware requires admin authentication and returns 401 if not admin
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAuth, _ := c.Get(IsAuthenticatedKey).(bool)
			if !isAuth {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			dbUser, ok := c.Get(DBUserKey).(*db.User)
			if !ok || dbUser == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}

			if !dbUser.IsAdmin {
				return echo.NewHTTPError(http.StatusUnauthorized, "Admin access required")
			}

			return next(c)
		}
	}
}
