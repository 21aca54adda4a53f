/*
Package tree implements a concurrency-safe generic tree of payload-carrying
nodes, plus a Walker DSL for searching and transforming it (top-down,
bottom-up, ancestor/descendant predicates) via a small pipeline of worker
goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'fp.tree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.tree")
}
