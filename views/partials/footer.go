package partials

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/storage/db"
)

// SiteFooter renders the footer with the current catalog so every page links
// to every service.
func SiteFooter(services []db.Service) g.Node {
	return Footer(Class("site-footer"),
		Div(Class("footer-inner"),
			Div(Class("footer-col"),
				H3(g.Text("Faraday AI")),
				P(g.Text("AI assistants for teachers, schools, and districts.")),
			),
			Div(Class("footer-col"),
				H3(g.Text("Services")),
				Ul(
					g.Map(services, func(svc db.Service) g.Node {
						return Li(A(Href("/services/"+svc.Slug), g.Text(svc.Name)))
					}),
				),
			),
			Div(Class("footer-col"),
				H3(g.Text("Company")),
				Ul(
					Li(A(Href("/about"), g.Text("About"))),
					Li(A(Href("/pricing"), g.Text("Pricing"))),
					Li(A(Href("/contact"), g.Text("Contact"))),
					Li(A(Href("/privacy"), g.Text("Privacy"))),
					Li(A(Href("/terms"), g.Text("Terms"))),
				),
			),
		),
		Div(Class("footer-legal"),
			g.Textf("© %d Faraday AI. All rights reserved.", time.Now().Year()),
		),
	)
}
