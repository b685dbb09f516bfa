// Package partials holds the shared page chunks: navigation, footer, flash
// notices, and the HTML fragments served to the modal loader.
package partials

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/views/helpers"
)

const (
	TabLogin    = "login"
	TabRegister = "register"
)

// NormalizeAuthTab maps any requested tab onto the two panes the modal has.
// Unknown values fall back to login, which is also the default.
func NormalizeAuthTab(tab string) string {
	if tab == TabRegister {
		return TabRegister
	}
	return TabLogin
}

// AuthModal renders the sign-in/register card that gets injected into
// #auth-modal-root. Exactly one tab and its pane carry the active class; the
// client-side toggle only moves that class around.
func AuthModal(tab string) g.Node {
	tab = NormalizeAuthTab(tab)
	loginActive := tab == TabLogin

	return Div(Class("modal-card"), Role("dialog"), Aria("modal", "true"), Aria("labelledby", "auth-modal-title"),
		Button(Type("button"), Class("modal-close"), g.Attr("data-modal-close"), Aria("label", "Close"), g.Text("×")),
		H2(ID("auth-modal-title"), Class("modal-title"), g.Text("Welcome to Faraday AI")),
		Div(Class("auth-tabs"), Role("tablist"),
			authTabButton("Sign in", TabLogin, loginActive),
			authTabButton("Create account", TabRegister, !loginActive),
		),
		authPane(TabLogin, loginActive, loginForm()),
		authPane(TabRegister, !loginActive, registerForm()),
	)
}

func authTabButton(label, tab string, active bool) g.Node {
	classes := []string{"auth-tab"}
	selected := "false"
	if active {
		classes = append(classes, "active")
		selected = "true"
	}
	// The toggle works two ways: modal.js flips the active classes locally,
	// and when htmx is present the button re-fetches the fragment with the
	// other tab active, so the server stays the source of truth.
	return Button(Type("button"), helpers.Classes(classes...), Role("tab"),
		g.Attr("data-auth-tab", tab), Aria("selected", selected),
		hx.Get("/fragments/auth-modal?tab="+tab), hx.Target("#auth-modal-root"), hx.Swap("innerHTML"),
		g.Text(label))
}

func authPane(tab string, active bool, form g.Node) g.Node {
	classes := []string{"auth-pane"}
	if active {
		classes = append(classes, "active")
	}
	return Div(helpers.Classes(classes...), g.Attr("data-auth-pane", tab), form)
}

func loginForm() g.Node {
	return Form(Method("post"), Action("/auth/login"), Class("auth-form"),
		Label(For("login-email"), g.Text("Email")),
		Input(ID("login-email"), Type("email"), Name("email"), Required(), AutoComplete("email")),
		Label(For("login-password"), g.Text("Password")),
		Input(ID("login-password"), Type("password"), Name("password"), Required(), AutoComplete("current-password")),
		Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text("Sign in")),
	)
}

func registerForm() g.Node {
	return Form(Method("post"), Action("/auth/register"), Class("auth-form"),
		Label(For("register-name"), g.Text("Full name")),
		Input(ID("register-name"), Type("text"), Name("full_name"), AutoComplete("name")),
		Label(For("register-email"), g.Text("Email")),
		Input(ID("register-email"), Type("email"), Name("email"), Required(), AutoComplete("email")),
		Label(For("register-password"), g.Text("Password")),
		Input(ID("register-password"), Type("password"), Name("password"), Required(), MinLength("8"), AutoComplete("new-password")),
		Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text("Create account")),
	)
}
