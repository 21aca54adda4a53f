// Package query plans and executes a Selector search over a domiface
// Element tree: given a Selector it picks the cheapest starting set and
// traversal strategy for find(root), memoizing per-simple-selector plans in
// the host-supplied ElementLookupTables and adapting when a cached
// estimate drifts too far from measured reality.
package query

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.query'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.query")
}
