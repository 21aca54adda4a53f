// Package style implements ComputedStyle, the pure functional record of a
// resolved CSS property universe, and the per-property apply/copy logic the
// cascade drives to build one.
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.style'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.style")
}
