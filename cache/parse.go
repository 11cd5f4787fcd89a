package cache

import (
	"github.com/corewireui/retcore/component"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// ParseAPI is published via component.Expose by Parse, letting a
// caller holding the "expose" prop callback trigger a new parse pass
// or clear previously parsed children without unmounting.
type ParseAPI struct {
	Reparse func(source any)
	Clear   func()
}

// Parse invokes parser with source and an append callback (spec
// §4.8): each call to append normalises its argument and adds it, in
// call order, to the rendered output. Children are kept in a Cache
// under positional keys, so a later Reparse reuses already-mounted
// children's instances from the pool instead of tearing every one
// down and remounting from scratch, and each child's entry tracks its
// own data signal reactively (via the same signal-as-tag mechanism
// r.C uses for a toggled root element), so Reparse produces a live
// update in place rather than a fresh subtree. Scope-owned: every
// child's scope is parented to the scope active when Parse is called.
func Parse(r *renderer.R, source any, parser func(source any, append func(child any))) any {
	c := New[any](r, func(data reactivity.Signal[any]) any {
		return func(r *renderer.R) any { return r.C(data, nil) }
	})

	run := func(src any) {
		c.Clear()
		next := 0
		parser(src, func(child any) {
			c.Add(next, child)
			next++
		})
	}
	run(source)

	component.Expose(ParseAPI{Reparse: run, Clear: c.Clear})

	return c.Mount()
}
