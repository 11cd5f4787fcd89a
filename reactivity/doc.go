// Package reactivity implements the signal graph: reactive cells with
// tracked reads, compared writes, lazy derived values, scope-owned
// watchers, and a glitch-free, batch-aware scheduler.
//
// The graph is push-pull: a write pushes a dirty mark synchronously
// through every downstream node (computed signals and watchers alike),
// but a computed signal only recomputes its value lazily, the next
// time something actually reads it. Watchers are scheduled into a run
// queue and executed at the end of the current synchronous task (or
// immediately, when not inside a Batch), which is this package's
// stand-in for the host language's microtask queue.
//
// Not concurrency-safe by design: the whole runtime is single-threaded
// cooperative per the execution model this graph serves.
package reactivity
