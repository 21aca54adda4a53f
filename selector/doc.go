// Package selector implements the CSS selector model: simple and compound
// selectors, combinators, specificity arithmetic, right-to-left tree
// matching, and the selector parser and round-trip serializer.
package selector

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.selector'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.selector")
}
