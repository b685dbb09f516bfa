package contact

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/views/helpers"
	"github.com/faraday-ai/faraday-web/views/layout"
)

// FormValues carries submitted fields back into the form after a rejection.
type FormValues struct {
	Name         string
	Email        string
	Organization string
	Message      string
}

// Index renders the contact page.
func Index(c echo.Context, shell layout.Shell) templ.Component {
	return helpers.Component(layout.Base(c, shell,
		Section(Class("contact"),
			H1(g.Text("Contact")),
			P(Class("hero-lede"), g.Text("Questions about a rollout, pricing, or anything else? We read everything.")),
			Div(ID("contact-result"),
				ContactForm(FormValues{}, ""),
			),
		),
	))
}

// ContactForm renders the form, optionally with prior values and an error.
func ContactForm(values FormValues, errMsg string) g.Node {
	return Form(Method("post"), Action("/contact"), Class("contact-form"),
		hx.Post("/contact"), hx.Target("#contact-result"), hx.Swap("innerHTML"),
		g.If(errMsg != "", P(Class("form-error"), Role("alert"), g.Text(errMsg))),

		Label(For("contact-name"), g.Text("Name")),
		Input(ID("contact-name"), Type("text"), Name("name"), Required(), Value(values.Name), AutoComplete("name")),

		Label(For("contact-email"), g.Text("Email")),
		Input(ID("contact-email"), Type("email"), Name("email"), Required(), Value(values.Email), AutoComplete("email")),

		Label(For("contact-org"), g.Text("School or organization (optional)")),
		Input(ID("contact-org"), Type("text"), Name("organization"), Value(values.Organization), AutoComplete("organization")),

		Label(For("contact-message"), g.Text("Message")),
		Textarea(ID("contact-message"), Name("message"), Required(), Rows("6"), g.Text(values.Message)),

		Button(Type("submit"), Class("btn btn-primary"), g.Text("Send message")),
	)
}

// Success replaces the form after a delivered message.
func Success(name string) g.Node {
	return Div(Class("contact-thanks"),
		H2(g.Text("Got it")),
		P(g.Textf("Thanks %s. We'll get back to you within two school days.", name)),
	)
}
