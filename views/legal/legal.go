// Package legal renders the privacy and terms pages.
package legal

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/views/helpers"
	"github.com/faraday-ai/faraday-web/views/layout"
)

// Privacy renders the privacy policy.
func Privacy(c echo.Context, shell layout.Shell) templ.Component {
	return helpers.Component(layout.Base(c, shell,
		Section(Class("legal"),
			H1(g.Text("Privacy Policy")),
			P(Class("legal-updated"), g.Text("Last updated August 2026")),

			H2(g.Text("What we collect")),
			P(g.Text("Account email addresses, names when provided, and the messages you send us. Waitlist signups store an email address and the feature you asked about.")),

			H2(g.Text("What we don't do")),
			P(g.Text("We do not sell personal data, run third-party advertising, or train models on student work. Student data handling is governed by the agreements schools sign with us.")),

			H2(g.Text("Cookies")),
			P(g.Text("One session cookie keeps you signed in. No tracking cookies.")),

			H2(g.Text("Contact")),
			P(g.Text("Privacy questions go to privacy@faraday.ai and we answer them ourselves.")),
		),
	))
}

// Terms renders the terms of service.
func Terms(c echo.Context, shell layout.Shell) templ.Component {
	return helpers.Component(layout.Base(c, shell,
		Section(Class("legal"),
			H1(g.Text("Terms of Service")),
			P(Class("legal-updated"), g.Text("Last updated August 2026")),

			H2(g.Text("The service")),
			P(g.Text("Faraday AI provides AI teaching assistants as described on each service page. Assistants marked coming soon are not part of any plan until they launch.")),

			H2(g.Text("Your account")),
			P(g.Text("Keep your credentials to yourself and tell us if something looks wrong. Accounts used to abuse the service get closed.")),

			H2(g.Text("Acceptable use")),
			P(g.Text("Use the assistants to support teaching. Don't use them to make final decisions about students without human review.")),

			H2(g.Text("Changes")),
			P(g.Text("We'll email account holders before material changes to these terms take effect.")),
		),
	))
}
