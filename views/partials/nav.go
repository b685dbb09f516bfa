package partials

import (
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/internal/auth"
)

// NavBar renders the top navigation. The sign-in button opens the auth modal;
// signed-in visitors get their name and a sign-out control instead.
func NavBar(c echo.Context) g.Node {
	authCtx := auth.GetAuthContext(c)

	return Header(Class("site-header"),
		Div(Class("nav-inner"),
			A(Href("/"), Class("brand"), g.Text("Faraday AI")),
			Nav(Class("site-nav"), Aria("label", "Main"),
				A(Href("/#services"), g.Text("Services")),
				A(Href("/pricing"), g.Text("Pricing")),
				A(Href("/about"), g.Text("About")),
				A(Href("/contact"), g.Text("Contact")),
			),
			Div(Class("nav-actions"),
				g.If(!authCtx.IsAuthenticated,
					Button(Type("button"), Class("btn btn-primary"), g.Attr("data-auth-open"), g.Text("Sign in")),
				),
				g.Iff(authCtx.IsAuthenticated, func() g.Node {
					return g.Group([]g.Node{
						g.If(authCtx.User.IsAdmin, A(Href("/admin"), Class("nav-link"), g.Text("Admin"))),
						Span(Class("nav-user"), g.Text(authCtx.User.FullName)),
						Form(Method("post"), Action("/auth/logout"), Class("inline-form"),
							Button(Type("submit"), Class("btn btn-ghost"), g.Text("Sign out")),
						),
					})
				}),
			),
		),
	)
}
