package reactivity

// computedNode is a derived, cached signal: both a consumer (it tracks
// the signals its function reads) and a dependency (other consumers can
// subscribe to it). Recomputation is lazy and pull-driven: a write to an
// upstream signal only flips dirty and forward-propagates that flag: the
// function itself doesn't rerun until something calls Get.
type computedNode[T any] struct {
	fn          func() T
	name        string
	value       T
	deps        map[dependency]struct{}
	subs        map[consumer]struct{}
	initialized bool
	dirty       bool
}

// Computed derives a signal from other signals. fn is not called until
// the computed signal is first read, and is not rerun on every upstream
// write: only once, lazily, the next time something reads it after an
// upstream change.
func Computed[T any](fn func() T) Signal[T] {
	return &computedNode[T]{
		fn:   fn,
		deps: make(map[dependency]struct{}),
		subs: make(map[consumer]struct{}),
	}
}

func (c *computedNode[T]) addDependency(d dependency) {
	c.deps[d] = struct{}{}
}

// markDirty stops propagating once already dirty: every downstream node
// has already been told, so walking further would repeat work without
// changing the outcome.
func (c *computedNode[T]) markDirty() {
	if c.dirty {
		return
	}
	c.dirty = true
	for _, sub := range snapshotConsumers(c.subs) {
		notifyOne(sub)
	}
}

func (c *computedNode[T]) detach() {
	for d := range c.deps {
		d.removeSubscriber(c)
	}
	c.deps = make(map[dependency]struct{})
}

func (c *computedNode[T]) removeSubscriber(sub consumer) {
	delete(c.subs, sub)
}

func (c *computedNode[T]) recompute() {
	c.detach()
	withActive(c, func() {
		c.value = c.fn()
	})
	c.dirty = false
	c.initialized = true
}

func (c *computedNode[T]) Get() T {
	if !c.initialized || c.dirty {
		c.recompute()
	}
	track(c, c.subs)
	return c.value
}

func (c *computedNode[T]) Peek() T {
	if !c.initialized || c.dirty {
		c.recompute()
	}
	return c.value
}

func (c *computedNode[T]) GetAny() any  { return c.Get() }
func (c *computedNode[T]) PeekAny() any { return c.Peek() }

// Set overwrites a computed signal's cached value directly, bypassing
// fn, and notifies subscribers if the value actually changes. Exists so
// a Computed can satisfy the full Signal interface for APIs (Bind,
// Connect) that accept either a plain or derived signal; most computed
// signals are never Set.
func (c *computedNode[T]) Set(v T) {
	c.initialized = true
	c.dirty = false
	c.value = v
	c.Trigger()
}

func (c *computedNode[T]) Trigger() {
	for _, sub := range snapshotConsumers(c.subs) {
		notifyOne(sub)
	}
	scheduleFlush()
}

func (c *computedNode[T]) Connect(fn func(T)) func() {
	return Watch(func() {
		fn(c.Get())
	})
}
