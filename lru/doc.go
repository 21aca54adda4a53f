// Package lru implements a bounded, most-recently-used-ordered cache backed
// by an entry array rather than container/list: each slot holds prev/next
// indices into the same array, and a free-list threads unused slots through
// the next field so eviction and reinsertion never allocate.
package lru

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.lru'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.lru")
}
