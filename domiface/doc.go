// Package domiface defines the abstract capability set the styling core
// requires of a host document tree: Element and the optional
// ElementLookupTables fast-index surface. Nothing in this module parses or
// mutates a DOM; domhtml is one concrete adapter, but any host tree that
// satisfies Element can be styled.
package domiface

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.domiface'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.domiface")
}
