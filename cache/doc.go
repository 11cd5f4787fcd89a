// Package cache implements the instance-reuse pool (Cache, Cached) and
// the parser-driven child list (Parse). Cache keeps a live, ordered set
// of component instances addressable by key; removing one doesn't
// dispose it, it moves to a reuse pool that a later Add can pop back
// out, reassigning its data signal instead of rerunning its template.
// Grounded on comps/page.go's componentRegistry, which preserves a
// component instance's state across re-renders by keying it and
// reusing the same *ComponentInstance rather than recreating it.
package cache
