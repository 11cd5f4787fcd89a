package cache

import (
	"github.com/corewireui/retcore/component"
	"github.com/corewireui/retcore/renderer"
)

// Cached is New plus publishing the resulting Cache through
// component.Expose, so a parent that passed an "expose" prop callback
// can call Lookup to find a live entry's node by key (spec §4.8's
// "weak item→node map for caller-side lookup"). Exposing the Cache
// itself rather than a raw map gives the same lookup capability
// without inventing a Go stand-in for JavaScript's WeakMap: nothing in
// the corpus reaches for a weak-reference library, and the entries a
// caller would look up are already kept alive by the cache's own live
// list, so there is no GC-pressure case a weak map would help with
// here.
func Cached[T any](r *renderer.R, tmpl Template[T]) *Cache[T] {
	c := New[T](r, tmpl)
	component.Expose(c)
	return c
}
