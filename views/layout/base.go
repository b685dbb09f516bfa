package layout

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/internal/auth"
	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/faraday-ai/faraday-web/views/partials"
)

// Shell carries the data every page hands to Base: head metadata, queued
// flash notices, and the service catalog the footer links to.
type Shell struct {
	Meta    PageMeta
	Flashes auth.Flashes
	Catalog []db.Service
}

// Base renders the document shell shared by every page: head metadata,
// navigation, flash notices, footer, and the auth modal mount point.
func Base(c echo.Context, shell Shell, content ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(headNodes(shell.Meta)...),
			h.Body(
				partials.NavBar(c),
				partials.FlashMessages(shell.Flashes),
				h.Main(h.ID("main"), g.Group(content)),
				partials.SiteFooter(shell.Catalog),

				// The modal loader assumes this mount point exists on every page
				h.Div(h.ID("auth-modal-root"), h.Class("modal-overlay hidden"), h.Aria("hidden", "true")),

				h.Script(h.Src("https://unpkg.com/htmx.org@1.9.12"), h.Defer()),
				h.Script(h.Src("/public/js/modal.js"), h.Defer()),
				h.Script(h.Src("/public/js/coming-soon.js"), h.Defer()),
			),
		),
	)
}

func headNodes(meta PageMeta) []g.Node {
	nodes := []g.Node{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(meta.Title)),
		h.Meta(h.Name("description"), h.Content(meta.Description)),
		g.If(len(meta.Keywords) > 0, h.Meta(h.Name("keywords"), h.Content(meta.KeywordsString()))),
		h.Link(h.Rel("canonical"), h.Href(meta.CanonicalURL)),

		// Open Graph
		ogMeta("og:type", meta.OGType),
		ogMeta("og:title", meta.OGTitle),
		ogMeta("og:description", meta.OGDescription),
		ogMeta("og:image", meta.OGImageURL),
		ogMeta("og:url", meta.OGURL),
		ogMeta("og:site_name", meta.OGSiteName),

		// Twitter Cards
		h.Meta(h.Name("twitter:card"), h.Content(meta.TwitterCard)),
		h.Meta(h.Name("twitter:title"), h.Content(meta.TwitterTitle)),
		h.Meta(h.Name("twitter:description"), h.Content(meta.TwitterDescription)),
		h.Meta(h.Name("twitter:image"), h.Content(meta.TwitterImageURL)),
		g.If(meta.TwitterSite != "", h.Meta(h.Name("twitter:site"), h.Content(meta.TwitterSite))),

		h.Link(h.Rel("stylesheet"), h.Href("/public/css/site.css")),
		h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href("/public/images/favicon.svg")),

		jsonLD(meta.OrganizationSchemaData()),
	}

	if meta.ServiceSchemaJSON != "" {
		nodes = append(nodes, h.Script(h.Type("application/ld+json"), g.Raw(meta.ServiceSchemaJSON)))
	}

	return nodes
}

func ogMeta(property, content string) g.Node {
	return h.Meta(g.Attr("property", property), h.Content(content))
}

func jsonLD(data map[string]interface{}) g.Node {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	return h.Script(h.Type("application/ld+json"), g.Raw(string(payload)))
}
