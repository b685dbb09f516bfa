package helpers

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// componentAdapter wraps a gomponents Node so it satisfies templ.Component.
// Views are plain Go functions; the render path speaks templ.
type componentAdapter struct {
	node g.Node
}

func (a *componentAdapter) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// Component adapts a gomponents tree for handlers that render templ components.
func Component(node g.Node) templ.Component {
	return &componentAdapter{node: node}
}
