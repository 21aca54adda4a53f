// Package grammar implements the declarative value-grammar DSL property
// parsers are built from: a small set of primitive matchers (color, length,
// keyword, ...) and combinators (sequence, one-of, optional, ...) that
// compose into the grammar for one CSS property value.
package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.grammar")
}
