// Package renderer defines the host-agnostic contract the runtime uses
// to materialize a component tree: NodeOps (the vtable any host — live
// DOM, an HTML string builder, an in-memory node graph — must provide)
// and R (the element factory built on top of it).
//
// R.C dispatches on the tag it's given: a string names a host element,
// the Fragment sentinel groups children without a wrapping element, a
// reactivity.AnyReadable remounts its subtree whenever the signal
// changes, and nil produces nothing. Dispatch for function tags
// (component templates) is registered by the component package at
// import time via RegisterComponentDispatch, avoiding an import cycle
// between renderer and component.
package renderer
