// Package domhtml adapts golang.org/x/net/html's parse tree to the
// domiface.Element capability set, and extracts embedded stylesheets
// (<style> bodies and style="" attributes) from a parsed document.
package domhtml

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.domhtml'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.domhtml")
}
