// Package css implements the CSS value language above the tokenizer: Measure
// and Color, the known-property table with shorthand decomposition, the
// per-property grammar-driven parser, and stylesheet parsing with
// error-tolerant recovery.
package css

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.css'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.css")
}
