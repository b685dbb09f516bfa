package about

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/views/helpers"
	"github.com/faraday-ai/faraday-web/views/layout"
)

// Index renders the about page.
func Index(c echo.Context, shell layout.Shell) templ.Component {
	return helpers.Component(layout.Base(c, shell,
		Section(Class("about"),
			H1(g.Text("About Faraday AI")),
			P(Class("hero-lede"), g.Text("We build AI assistants that handle the parts of school that aren't teaching.")),
			Div(Class("about-body"),
				P(g.Text("Faraday AI started in a classroom. Our founders spent years watching teachers lose evenings to grading, scheduling, and paperwork that software should have absorbed a decade ago.")),
				P(g.Text("Each Faraday assistant is built for one job: assessment support, language-arts tutoring, front-office work, physical education planning. Narrow tools, done properly, instead of one chatbot pretending to do everything.")),
				P(g.Text("Teachers stay in control. Every assistant drafts, suggests, and organizes; a human reviews and decides. That principle is not negotiable.")),
			),
			Div(Class("about-cta"),
				A(Href("/contact"), Class("btn btn-primary"), g.Text("Talk to us")),
			),
		),
	))
}
