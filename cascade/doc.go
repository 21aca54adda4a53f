// Package cascade implements the style manager: a mutable collection of
// stylesheets with fast per-element candidate-rule indices, the CSS cascade
// (decompose, retain highest specificity per longhand, apply/inherit/
// initial/unset), and style computation for a document tree.
package cascade

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.cascade")
}
