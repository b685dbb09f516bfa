package auth

import (
	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/labstack/echo/v4"
)

// Context holds authentication data to be passed to templates
type Context struct {
	IsAuthenticated bool
	User            *UserData
}

// UserData contains user information for templates
type UserData struct {
	ID       string
	Email    string
	FullName string
	IsAdmin  bool
}

// GetAuthContext returns authentication context for templates
// This provides ALL auth data needed by templates in a single call
func GetAuthContext(c echo.Context) *Context {
	isAuth, _ := c.Get(IsAuthenticatedKey).(bool)

	if !isAuth {
		return &Context{
			IsAuthenticated: false,
			User:            nil,
		}
	}

	dbUser, ok := c.Get(DBUserKey).(*db.User)
	if !ok || dbUser == nil {
		return &Context{
			IsAuthenticated: false,
			User:            nil,
		}
	}

	return &Context{
		IsAuthenticated: true,
		User: &UserData{
			ID:       dbUser.ID,
			Email:    dbUser.Email,
			FullName: displayName(dbUser),
			IsAdmin:  dbUser.IsAdmin,
		},
	}
}

// displayName prefers the stored full name and falls back to the email.
func displayName(u *db.User) string {
	if u.FullName.Valid && u.FullName.String != "" {
		return u.FullName.String
	}
	return u.Email
}
