package partials

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ComingSoon renders the placeholder card for features that are not live yet.
// The waitlist form posts through htmx when available and falls back to a
// normal form submission otherwise.
func ComingSoon(feature string) g.Node {
	return Div(Class("modal-card"), Role("dialog"), Aria("modal", "true"), Aria("labelledby", "coming-soon-title"),
		Button(Type("button"), Class("modal-close"), g.Attr("data-modal-close"), Aria("label", "Close"), g.Text("×")),
		H2(ID("coming-soon-title"), Class("modal-title"), g.Textf("%s is coming soon", feature)),
		P(Class("modal-lede"), g.Text("We're still building this one. Leave your email and we'll let you know the moment it opens up.")),
		Div(ID("waitlist-result"),
			WaitlistForm(feature),
		),
	)
}

// WaitlistForm is the email capture inside the coming-soon card and on the
// pricing page.
func WaitlistForm(feature string) g.Node {
	return Form(Method("post"), Action("/api/waitlist"), Class("waitlist-form"),
		hx.Post("/api/waitlist"), hx.Target("#waitlist-result"), hx.Swap("innerHTML"),
		Input(Type("hidden"), Name("feature"), Value(feature)),
		Label(Class("sr-only"), For("waitlist-email"), g.Text("Email")),
		Input(ID("waitlist-email"), Type("email"), Name("email"), Required(), Placeholder("you@school.org"), AutoComplete("email")),
		Button(Type("submit"), Class("btn btn-primary"), g.Text("Join the waitlist")),
	)
}

// WaitlistThanks confirms a signup in place of the form.
func WaitlistThanks(feature string) g.Node {
	return Div(Class("waitlist-thanks"),
		P(g.Textf("You're on the list for %s. We'll be in touch.", feature)),
	)
}

// WaitlistError reports a rejected signup above a fresh form.
func WaitlistError(feature, message string) g.Node {
	return Div(
		P(Class("form-error"), g.Text(message)),
		WaitlistForm(feature),
	)
}
