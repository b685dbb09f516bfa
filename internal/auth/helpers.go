package auth

import (
	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/labstack/echo/v4"
)

// GetDBUser retrieves the database user from context
func GetDBUser(c echo.Context) (*db.User, bool) {
	dbUser, ok := c.Get(DBUserKey).(*db.User)
	return dbUser, ok && dbUser != nil
}

// IsAuthenticated checks if the current request is authenticated
func IsAuthenticated(c echo.Context) bool {
	isAuth, _ := c.Get(IsAuthenticatedKey).(bool)
	return isAuth
}

// IsAdmin reports whether the signed-in user has admin rights.
func IsAdmin(c echo.Context) bool {
	dbUser, ok := GetDBUser(c)
	return ok && dbUser.IsAdmin
}

// GetUserID gets the user ID from the database user
func GetUserID(c echo.Context) (string, bool) {
	if dbUser, ok := GetDBUser(c); ok {
		return dbUser.ID, true
	}
	return "", false
}
