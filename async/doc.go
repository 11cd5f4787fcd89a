// Package async implements the async boundary primitives: Async (mount
// a fallback, swap in a resolved/rejected subtree), Suspense (a shared
// fallback while any descendant Async is pending), Lazy (defer loading
// a component template), and Transition (an entering/leaving/pending/
// entered state machine for coordinating a swap). Grounded on the
// teacher's action package (Future[T]'s resolve/reject shape,
// lifecycle.go's scope-tied disposal) and reactivity/resource.go's
// cancellation-by-disposal pattern, generalized from a single hook into
// a renderer-driven subtree boundary.
package async
