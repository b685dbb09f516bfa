package pricing

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/views/helpers"
	"github.com/faraday-ai/faraday-web/views/layout"
	"github.com/faraday-ai/faraday-web/views/partials"
)

type plan struct {
	Name     string
	Price    string
	Cadence  string
	Audience string
	Points   []string
}

// Paid checkout isn't wired up yet, so every plan button routes through the
// coming-soon flow and the waitlist captures interest.
var plans = []plan{
	{
		Name:     "Teacher",
		Price:    "Free",
		Cadence:  "during beta",
		Audience: "For individual teachers",
		Points: []string{
			"All available assistants",
			"One classroom",
			"Community support",
		},
	},
	{
		Name:     "School",
		Price:    "$299",
		Cadence:  "per month",
		Audience: "For a whole school",
		Points: []string{
			"Everything in Teacher",
			"Unlimited classrooms",
			"Admin dashboard",
			"Priority support",
		},
	},
	{
		Name:     "District",
		Price:    "Custom",
		Cadence:  "annual agreement",
		Audience: "For districts and networks",
		Points: []string{
			"Everything in School",
			"LMS integration rollout",
			"Dedicated onboarding",
		},
	},
}

// Index renders the pricing page.
func Index(c echo.Context, shell layout.Shell) templ.Component {
	return helpers.Component(layout.Base(c, shell,
		Section(Class("pricing"),
			H1(g.Text("Pricing")),
			P(Class("hero-lede"), g.Text("Simple plans that grow with you. Paid plans open with the full launch.")),
			Div(Class("plan-grid"),
				g.Map(plans, planCard),
			),
		),
		Section(Class("pricing-waitlist"),
			H2(g.Text("Want launch pricing first?")),
			P(g.Text("Waitlist members lock in beta pricing for their first year.")),
			Div(ID("waitlist-result"), partials.WaitlistForm("Pricing")),
		),
	))
}

func planCard(p plan) g.Node {
	return Div(Class("plan-card"),
		H2(g.Text(p.Name)),
		P(Class("plan-audience"), g.Text(p.Audience)),
		Div(Class("plan-price"),
			Span(Class("price"), g.Text(p.Price)),
			Span(Class("cadence"), g.Text(p.Cadence)),
		),
		Ul(Class("plan-points"),
			g.Map(p.Points, func(point string) g.Node {
				return Li(g.Text(point))
			}),
		),
		Button(Type("button"), Class("btn btn-primary btn-block"), g.Attr("data-coming-soon", "Pricing"), g.Text("Choose "+p.Name)),
	)
}
