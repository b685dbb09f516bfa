// Package services renders the per-service product pages.
package services

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/faraday-ai/faraday-web/views/helpers"
	"github.com/faraday-ai/faraday-web/views/layout"
	"github.com/faraday-ai/faraday-web/views/partials"
)

// Detail renders one service page: tagline, description, feature list, and a
// call to action that depends on whether the service is live yet.
func Detail(c echo.Context, shell layout.Shell, svc db.Service, features []db.ServiceFeature) templ.Component {
	return helpers.Component(layout.Base(c, shell,
		serviceHero(svc),
		featureList(features),
		serviceCTA(svc),
	))
}

// NotFound renders the catalog fallback for an unknown service slug.
func NotFound(c echo.Context, shell layout.Shell, slug string) templ.Component {
	return helpers.Component(layout.Base(c, shell,
		Section(Class("not-found"),
			H1(g.Text("We don't have that one")),
			P(g.Textf("No service called %q exists. These do:", slug)),
			Ul(Class("not-found-list"),
				g.Map(shell.Catalog, func(s db.Service) g.Node {
					return Li(A(Href("/services/"+s.Slug), g.Text(s.Name)))
				}),
			),
		),
	))
}

func serviceHero(svc db.Service) g.Node {
	return Section(Class("service-hero"),
		Div(Class("hero-inner"),
			g.If(svc.Status == db.ServiceStatusComingSoon,
				Span(Class("badge badge-soon"), g.Text("Coming soon")),
			),
			H1(g.Text(svc.Name)),
			P(Class("hero-lede"), g.Text(svc.Tagline)),
			P(Class("service-description"), g.Text(svc.Description)),
			A(Href("/services/"+svc.Slug+"/brochure.pdf"), Class("brochure-link"),
				g.Text("Download the one-page brochure (PDF)")),
		),
	)
}

func featureList(features []db.ServiceFeature) g.Node {
	if len(features) == 0 {
		return nil
	}
	return Section(Class("feature-list"),
		H2(g.Text("What it does")),
		Dl(
			g.Map(features, func(f db.ServiceFeature) g.Node {
				return g.Group([]g.Node{
					Dt(g.Text(f.Title)),
					Dd(g.Text(f.Detail)),
				})
			}),
		),
	)
}

func serviceCTA(svc db.Service) g.Node {
	if svc.Status == db.ServiceStatusComingSoon {
		return Section(Class("service-cta"),
			H2(g.Textf("%s isn't live yet", svc.Name)),
			P(g.Text("Join the waitlist and we'll email you the moment it opens up.")),
			Div(ID("waitlist-result"), partials.WaitlistForm(svc.Name)),
		)
	}

	return Section(Class("service-cta"),
		H2(g.Text("Try it today")),
		P(g.Textf("%s is available on every plan. Sign in or create a free account to start.", svc.Name)),
		Button(Type("button"), Class("btn btn-primary btn-lg"), g.Attr("data-auth-open"), g.Text("Sign in")),
	)
}
