package auth

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, key)
	sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// Flashes holds the messages drained from the flash session for one render.
type Flashes struct {
	Success []string
	Error   []string
}

// GetFlashes retrieves and clears flash messages from the session.
func GetFlashes(c echo.Context) Flashes {
	var out Flashes

	sess, _ := session.Get(flashSessionName, c)

	// Flashes() retrieves and then clears the flashes from the session,
	// so the session must be saved afterwards to persist the clearing.
	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)

	if len(successFlashes) > 0 || len(errorFlashes) > 0 {
		for _, f := range successFlashes {
			if msg, ok := f.(string); ok {
				out.Success = append(out.Success, msg)
			}
		}
		for _, f := range errorFlashes {
			if msg, ok := f.(string); ok {
				out.Error = append(out.Error, msg)
			}
		}
		_ = sess.Save(c.Request(), c.Response())
	}
	return out
}
