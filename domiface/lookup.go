package domiface

// ElementLookupTables is an optional, host-supplied set of fast indices.
// When a host provides one, the query planner (package query) can plan a
// selector search in terms of these indices instead of a full subtree scan.
// The Plans cache slot additionally lets the planner memoize selector plans
// per document instance.
type ElementLookupTables interface {
	ByElementType(name string) []Element
	ByID(id string) []Element
	ByClassName(class string) []Element
	ByName(attrName string) []Element       // elements carrying a `name` attribute equal to attrName
	ByTypeAttribute(attrType string) []Element // elements carrying a `type` attribute equal to attrType

	// PlanCache returns a mutable, host-owned slot the query planner uses
	// to memoize per-selector plans and their cost metrics. A host that has
	// no need to persist plans across calls may back this with a slot that
	// starts empty every time; the planner tolerates cache misses.
	PlanCache() *PlanCacheSlot
}

// PlanCacheSlot is an opaque holder for whatever the query package chooses
// to store; domiface only owns its lifetime, not its contents, to avoid an
// import cycle between domiface and query.
type PlanCacheSlot struct {
	Value any
}
