package auth

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie holding the signed-in user's session.
	SessionName = "faraday-session"

	sessionUserIDKey = "user_id"
	sessionMaxAge    = 86400 * 7
)

// NewSessionStore builds the cookie store every session-backed feature
// (sign-in state, flash messages) reads from. Secure is off in development
// so cookies survive plain-HTTP localhost.
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SignIn records the user ID in the session cookie.
func SignIn(c echo.Context, userID string) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	sess.Values[sessionUserIDKey] = userID
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SignOut drops the session cookie.
func SignOut(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	delete(sess.Values, sessionUserIDKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// sessionUserID extracts the signed-in user ID, if any.
func sessionUserID(c echo.Context) (string, bool) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return "", false
	}
	id, ok := sess.Values[sessionUserIDKey].(string)
	return id, ok && id != ""
}
