package admin

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/faraday-ai/faraday-web/views/helpers"
	"github.com/faraday-ai/faraday-web/views/layout"
)

// Dashboard aggregates everything the admin page shows.
type Dashboard struct {
	UserCount     int64
	WaitlistCount int64
	ContactCount  int64
	Signups       []db.WaitlistSignup
	Contacts      []db.ContactRequest
	Activity      []db.ActivityLog
}

// Index renders the admin dashboard.
func Index(c echo.Context, shell layout.Shell, data Dashboard) templ.Component {
	return helpers.Component(layout.Base(c, shell,
		Section(Class("admin"),
			H1(g.Text("Dashboard")),
			Div(Class("stat-grid"),
				statCard("Accounts", data.UserCount),
				statCard("Waitlist signups", data.WaitlistCount),
				statCard("Contact requests", data.ContactCount),
			),
			signupsTable(data.Signups),
			contactsTable(data.Contacts),
			activityFeed(data.Activity),
		),
	))
}

func statCard(label string, value int64) g.Node {
	return Div(Class("stat-card"),
		Span(Class("stat-value"), g.Text(helpers.FormatInt(value))),
		Span(Class("stat-label"), g.Text(label)),
	)
}

func signupsTable(signups []db.WaitlistSignup) g.Node {
	return Section(Class("admin-section"),
		H2(g.Text("Recent waitlist signups")),
		g.If(len(signups) == 0, P(Class("empty"), g.Text("Nothing yet."))),
		g.If(len(signups) > 0,
			Table(Class("admin-table"),
				THead(Tr(Th(g.Text("Email")), Th(g.Text("Feature")), Th(g.Text("When")))),
				TBody(
					g.Map(signups, func(s db.WaitlistSignup) g.Node {
						return Tr(
							Td(g.Text(s.Email)),
							Td(g.Text(s.Feature)),
							Td(g.Text(helpers.FormatDateTime(s.CreatedAt))),
						)
					}),
				),
			),
		),
	)
}

func contactsTable(contacts []db.ContactRequest) g.Node {
	return Section(Class("admin-section"),
		H2(g.Text("Recent contact requests")),
		g.If(len(contacts) == 0, P(Class("empty"), g.Text("Nothing yet."))),
		g.If(len(contacts) > 0,
			Table(Class("admin-table"),
				THead(Tr(Th(g.Text("Name")), Th(g.Text("Email")), Th(g.Text("Status")), Th(g.Text("When")))),
				TBody(
					g.Map(contacts, func(cr db.ContactRequest) g.Node {
						return Tr(
							Td(g.Text(cr.Name)),
							Td(g.Text(cr.Email)),
							Td(Span(Class("badge"), g.Text(cr.Status))),
							Td(g.Text(helpers.FormatDateTime(cr.CreatedAt))),
						)
					}),
				),
			),
		),
	)
}

func activityFeed(activity []db.ActivityLog) g.Node {
	return Section(Class("admin-section"),
		H2(g.Text("Activity")),
		g.If(len(activity) == 0, P(Class("empty"), g.Text("Nothing yet."))),
		Ul(Class("activity-feed"),
			g.Map(activity, func(a db.ActivityLog) g.Node {
				return Li(
					Span(Class("activity-type"), g.Text(a.EventType)),
					g.Text(" "),
					g.Text(helpers.FormatNullString(a.Detail, "")),
					Span(Class("activity-time"), g.Text(helpers.FormatDateTime(a.CreatedAt))),
				)
			}),
		),
	)
}
