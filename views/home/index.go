package home

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/faraday-ai/faraday-web/views/helpers"
	"github.com/faraday-ai/faraday-web/views/layout"
)

// Index renders the landing page with the service catalog grid.
func Index(c echo.Context, shell layout.Shell, services []db.Service) templ.Component {
	return helpers.Component(layout.Base(c, shell,
		hero(),
		catalog(services),
		closingCTA(),
	))
}

func hero() g.Node {
	return Section(Class("hero"),
		Div(Class("hero-inner"),
			H1(g.Text("AI assistants for every classroom")),
			P(Class("hero-lede"), g.Text("Faraday AI takes the busywork out of teaching. Grading support, lesson planning, school operations, and more, each handled by a purpose-built assistant.")),
			Div(Class("hero-actions"),
				Button(Type("button"), Class("btn btn-primary btn-lg"), g.Attr("data-coming-soon", "Getting Started"), g.Text("Get started")),
				A(Href("/#services"), Class("btn btn-ghost btn-lg"), g.Text("Browse services")),
			),
		),
	)
}

func catalog(services []db.Service) g.Node {
	return Section(ID("services"), Class("catalog"),
		H2(g.Text("One assistant for every job")),
		Div(Class("catalog-grid"),
			g.Map(services, serviceCard),
		),
	)
}

func serviceCard(svc db.Service) g.Node {
	return A(Href("/services/"+svc.Slug), Class("service-card"),
		Div(Class("card-head"),
			H3(g.Text(svc.Name)),
			g.If(svc.Status == db.ServiceStatusComingSoon,
				Span(Class("badge badge-soon"), g.Text("Coming soon")),
			),
		),
		P(g.Text(svc.Tagline)),
	)
}

func closingCTA() g.Node {
	return Section(Class("closing-cta"),
		H2(g.Text("Ready when you are")),
		P(g.Text("Create a free account and try the assistants that are live today.")),
		Button(Type("button"), Class("btn btn-primary btn-lg"), g.Attr("data-auth-open"), g.Text("Create an account")),
	)
}
