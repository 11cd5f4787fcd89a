package cache

import (
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// Template renders a single cached entry. data is a signal the entry
// owns for its entire lifetime in the cache, including across Update
// calls and pool reuse cycles: the template is only ever invoked once
// per live instance, and is expected to read data reactively (binding
// it into a child, a prop, or a nested reactivity.Watch) so a later
// Update is reflected without rerunning setup.
type Template[T any] func(data reactivity.Signal[T]) any

type entry[T any] struct {
	key   any
	scope *reactivity.Scope
	node  any
	data  reactivity.Signal[T]
}

// Cache is a pool of component instances addressable by key (spec
// §4.8). Add appends a new entry (or updates an existing one in
// place); Del removes an entry from the live list without disposing
// it, pushing it into a reuse pool that a later Add pops back out of,
// reassigning its data instead of re-running Template.
type Cache[T any] struct {
	r       *renderer.R
	tmpl    Template[T]
	owner   *reactivity.Scope
	anchor  any
	mounted bool

	live  []*entry[T]
	byKey map[any]*entry[T]
	pool  []*entry[T]
}

// New creates a Cache bound to the scope active at the call site.
// Disposing that scope disposes every entry the cache ever created,
// live or pooled.
func New[T any](r *renderer.R, tmpl Template[T]) *Cache[T] {
	c := &Cache[T]{
		r:      r,
		tmpl:   tmpl,
		owner:  reactivity.CurrentScope(),
		anchor: r.Ops.CreateAnchor("cache"),
		byKey:  map[any]*entry[T]{},
	}
	c.owner.OnDispose(c.disposeAll)
	return c
}

func (c *Cache[T]) disposeAll() {
	for _, e := range c.live {
		e.scope.Dispose()
	}
	for _, e := range c.pool {
		e.scope.Dispose()
	}
	c.live = nil
	c.pool = nil
	c.byKey = map[any]*entry[T]{}
}

func (c *Cache[T]) createEntry(key any, data T) *entry[T] {
	scope := reactivity.NewScope(c.owner)
	e := &entry[T]{key: key, scope: scope, data: reactivity.CreateSignal(data)}
	reactivity.RunInScope(scope, func() {
		e.node = c.r.EnsureElement(c.tmpl(e.data))
	})
	return e
}

// Mount returns the renderable value the cache should be embedded as.
// Entries added before Mount is called are folded into the returned
// value directly (the anchor has no parent yet on first attach, same
// as control.Fn/list.For); entries added afterward are inserted
// relative to the anchor, which by then does.
func (c *Cache[T]) Mount() any {
	c.mounted = true
	if len(c.live) == 0 {
		return c.anchor
	}
	nodes := make([]any, 0, len(c.live)+1)
	for _, e := range c.live {
		if e.node != nil {
			nodes = append(nodes, e.node)
		}
	}
	nodes = append(nodes, c.anchor)
	frag := c.r.CreateFragment()
	c.r.AppendNode(frag, nodes...)
	return frag
}

// Add appends a new entry under key, reusing a pooled instance (and
// reassigning its data via Update's path) when one is available rather
// than creating a fresh one. If key is already live, it behaves as
// Update.
func (c *Cache[T]) Add(key any, data T) {
	if _, ok := c.byKey[key]; ok {
		c.Update(key, data)
		return
	}

	if n := len(c.pool); n > 0 {
		e := c.pool[n-1]
		c.pool = c.pool[:n-1]
		e.key = key

		c.live = append(c.live, e)
		c.byKey[key] = e
		// Reattach before reassigning data: a reused entry's node may
		// itself be a reactive subtree (Template binding data as a
		// dynamic tag, say) whose own watcher swaps content by
		// inserting relative to an anchor inside e.node. That anchor
		// only has a real parent again once e.node itself has been
		// reinserted, so Set must run after, not before, or the
		// watcher's own InsertBefore silently no-ops against a still-
		// detached anchor.
		if c.mounted && e.node != nil {
			c.r.InsertBefore(e.node, c.anchor)
		}
		e.data.Set(data)
		return
	}

	e := c.createEntry(key, data)
	c.live = append(c.live, e)
	c.byKey[key] = e
	if c.mounted && e.node != nil {
		c.r.InsertBefore(e.node, c.anchor)
	}
}

// Replace swaps out the instance at key for one popped from the reuse
// pool, unlike Update, which reassigns data on the same instance in
// place. Implemented as Del followed by Add: with nothing else
// touching the pool in between, the instance just removed is the one
// popped back out, so in practice it behaves like Update except the
// entry moves to the end of the live order.
func (c *Cache[T]) Replace(key any, data T) {
	c.Del(key)
	c.Add(key, data)
}

// Update reassigns key's data in place without re-running Template,
// per spec §4.8. A key not currently live is a no-op.
func (c *Cache[T]) Update(key any, data T) {
	if e, ok := c.byKey[key]; ok {
		e.data.Set(data)
	}
}

// Del removes key from the live list and pushes its instance into the
// reuse pool. The instance's scope is not disposed; its node is
// detached from the tree if the cache is mounted.
func (c *Cache[T]) Del(key any) {
	e, ok := c.byKey[key]
	if !ok {
		return
	}
	delete(c.byKey, key)
	for i, le := range c.live {
		if le == e {
			c.live = append(c.live[:i], c.live[i+1:]...)
			break
		}
	}
	if c.mounted && e.node != nil {
		c.r.RemoveNode(e.node)
	}
	c.pool = append(c.pool, e)
}

// Clear pushes every live entry into the reuse pool.
func (c *Cache[T]) Clear() {
	for _, e := range c.live {
		if c.mounted && e.node != nil {
			c.r.RemoveNode(e.node)
		}
		c.pool = append(c.pool, e)
	}
	c.live = nil
	c.byKey = map[any]*entry[T]{}
}

// Lookup returns the host node currently rendered for key, for a
// caller that needs to measure or scroll to a specific live entry.
func (c *Cache[T]) Lookup(key any) (any, bool) {
	e, ok := c.byKey[key]
	if !ok {
		return nil, false
	}
	return e.node, true
}

// Len reports the number of live entries.
func (c *Cache[T]) Len() int { return len(c.live) }
