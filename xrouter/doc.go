// Package xrouter is a peripheral, optional router built on top of
// this module's public component/control/renderer contract: route
// components are ordinary component.Template values, the currently
// matched route is tracked in a reactivity.Signal, and a route swap
// is driven through control.Fn plus async.Transition the same way any
// other dynamic subtree is.
//
// Grounded on the teacher's router package: matcher.go's
// segment-by-segment pattern matching (static, ":param", "param?" and
// "*rest" segments) is carried over almost unchanged since it has no
// framework dependency of its own; Router/Location/RouteMatch follow
// router.go's shape, generalized from a gomponents-returning
// Component callback to a component.Template. Browser history wiring
// is split behind a build tag, as router_wasm.go versus the
// package's other files do in the teacher, so the matching and
// navigation-state logic stays testable with a plain `go test`.
package xrouter
