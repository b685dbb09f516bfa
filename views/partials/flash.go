package partials

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/faraday-ai/faraday-web/internal/auth"
)

// FlashMessages renders queued flash notices. Renders nothing when the queue
// is empty.
func FlashMessages(flashes auth.Flashes) g.Node {
	if len(flashes.Success) == 0 && len(flashes.Error) == 0 {
		return nil
	}

	return Div(Class("flash-stack"),
		g.Map(flashes.Success, func(msg string) g.Node {
			return Div(Class("flash flash-success"), Role("status"), g.Text(msg))
		}),
		g.Map(flashes.Error, func(msg string) g.Node {
			return Div(Class("flash flash-error"), Role("alert"), g.Text(msg))
		}),
	)
}
