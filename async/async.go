package async

import (
	"github.com/corewireui/retcore/internal/logging"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// AsyncProps configures Async. Future is the value's source; Fallback
// is mounted immediately and swapped out the moment Future settles;
// Catch, given an error, produces a fallback subtree for the rejected
// case — if nil, a rejection is only logged and nothing is mounted in
// its place. Name identifies the boundary in logged errors.
type AsyncProps[T any] struct {
	Future   Source[T]
	Fallback any
	Catch    func(err error) any
	Name     string
}

// Async mounts Fallback synchronously, then — whenever Future settles —
// disposes the fallback's scope and mounts child(value) (on resolve) or
// Catch(err) (on reject) in a fresh scope of its own. If an enclosing
// Suspense provided a pending counter, Async increments it on mount and
// decrements it exactly once, the instant Future settles, regardless of
// whether a Catch subtree ends up mounted. If Async's own scope is
// disposed before Future settles, Future's canceller is invoked and any
// later settlement is a no-op, per spec §4.7.
func Async[T any](r *renderer.R, props AsyncProps[T], child func(value T) any) any {
	anchor := r.Ops.CreateAnchor("async")

	counter := pendingCount.Use()
	if counter != nil {
		counter.Set(counter.Peek() + 1)
	}
	decrementOnce := func() {
		if counter == nil {
			return
		}
		counter.Set(counter.Peek() - 1)
		counter = nil
	}

	outer := reactivity.CurrentScope()
	disposed := false

	fallbackScope := reactivity.NewScope(outer)
	var mounted any
	reactivity.RunInScope(fallbackScope, func() {
		mounted = r.EnsureElement(props.Fallback)
	})

	first := true
	var initial any = mounted

	settle := func(next any) {
		fallbackScope.Dispose()

		scope := reactivity.NewScope(outer)
		var node any
		reactivity.RunInScope(scope, func() {
			node = r.EnsureElement(next)
		})

		if first {
			initial = node
			mounted = node
			return
		}
		if mounted != nil {
			r.RemoveNode(mounted)
		}
		mounted = node
		if node != nil {
			r.InsertBefore(node, anchor)
		}
	}

	cancel := props.Future.Subscribe(func(v T) {
		decrementOnce()
		if disposed {
			return
		}
		settle(func(r *renderer.R) any { return child(v) })
	}, func(err error) {
		decrementOnce()
		if disposed {
			return
		}
		if props.Catch != nil {
			settle(func(r *renderer.R) any { return props.Catch(err) })
			return
		}
		logging.Log("retcore: unhandled async rejection in", props.Name, ":", err)
		settle(nil)
	})

	outer.OnDispose(func() {
		disposed = true
		if cancel != nil {
			cancel()
		}
	})

	first = false
	if initial == nil {
		return anchor
	}
	frag := r.CreateFragment()
	r.AppendNode(frag, initial, anchor)
	return frag
}
