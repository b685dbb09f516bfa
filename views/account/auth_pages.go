// Package account renders the full-page fallbacks for signing in and
// registering. The same card the modal loader fetches is rendered inline, so
// the flow works without JavaScript.
package account

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/views/helpers"
	"github.com/faraday-ai/faraday-web/views/layout"
	"github.com/faraday-ai/faraday-web/views/partials"
)

// Login renders the sign-in page with the login pane active.
func Login(c echo.Context, shell layout.Shell) templ.Component {
	return authPage(c, shell, partials.TabLogin)
}

// Register renders the sign-up page with the register pane active.
func Register(c echo.Context, shell layout.Shell) templ.Component {
	return authPage(c, shell, partials.TabRegister)
}

func authPage(c echo.Context, shell layout.Shell, tab string) templ.Component {
	return helpers.Component(layout.Base(c, shell,
		Section(Class("auth-page"),
			partials.AuthModal(tab),
		),
	))
}
