// Package entity is a bidirectional map between named HTML 4 character
// references ("&amp;", "&lt;", ...) and the Unicode code points they stand
// for, plus escape/unescape helpers built on that map.
package entity

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylecore.entity'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.entity")
}
