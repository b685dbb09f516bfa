package helpers

import (
	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Classes merges Tailwind utility classes with later classes winning conflicts,
// so call sites can layer variant classes over a shared base.
func Classes(classes ...string) g.Node {
	return Class(twmerge.Merge(classes...))
}
