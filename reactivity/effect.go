package reactivity

import (
	"fmt"

	"github.com/corewireui/retcore/internal/logging"
	"github.com/corewireui/retcore/internal/uierrors"
)

// effectNode is a watcher: a function rerun whenever a signal it reads
// becomes dirty. Lifecycle is tied to the scope it was created in.
type effectNode struct {
	fn       func()
	name     string
	deps     map[dependency]struct{}
	cleanups []func()
	disposed bool
}

func newEffectNode(fn func(), name string) *effectNode {
	return &effectNode{fn: fn, name: name, deps: make(map[dependency]struct{})}
}

func (e *effectNode) addDependency(d dependency) {
	e.deps[d] = struct{}{}
}

func (e *effectNode) markDirty() {
	if e.disposed {
		return
	}
	enqueueEffect(e)
}

func (e *effectNode) detach() {
	for d := range e.deps {
		d.removeSubscriber(e)
	}
	e.deps = make(map[dependency]struct{})
}

func (e *effectNode) runCleanups() {
	cleanups := e.cleanups
	e.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// run reruns fn in a tracking scope, collecting a fresh dependency set
// and dropping subscriptions to dependencies no longer read. The panic
// recovery here is the isolation boundary: one misbehaving watcher must
// not corrupt the scheduler's run queue or stop its siblings running.
func (e *effectNode) run() (err error) {
	if e.disposed {
		return nil
	}
	e.runCleanups()
	e.detach()

	prevEffect := currentEffect
	currentEffect = e
	defer func() { currentEffect = prevEffect }()

	defer func() {
		if r := recover(); r != nil {
			err = uierrors.RecoverRender(e.name, r)
		}
	}()
	withActive(e, e.fn)
	return nil
}

// Dispose stops the watcher: runs final cleanups and detaches from
// every dependency. Idempotent.
func (e *effectNode) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.runCleanups()
	e.detach()
}

// currentEffect is the watcher presently rerunning, used only to scope
// OnCleanup registrations; distinct from `active`, which also includes
// computed signals while they recompute (OnCleanup inside a Computed is
// a no-op, since a computed signal has no cleanup phase of its own).
var currentEffect *effectNode

// Watch runs fn immediately in a tracking scope, and reruns it whenever
// any signal it read becomes dirty. The watcher is registered on the
// current scope and disposed when that scope is disposed; the returned
// function disposes it early.
func Watch(fn func()) func() {
	return namedWatch("", fn)
}

// WatchNamed is Watch with a diagnostic name attached to errors raised
// from fn, surfaced through uierrors.RenderError.
func WatchNamed(name string, fn func()) func() {
	return namedWatch(name, fn)
}

func namedWatch(name string, fn func()) func() {
	e := newEffectNode(fn, name)
	scope := CurrentScope()
	scope.OnDispose(e.Dispose)

	if err := e.run(); err != nil {
		logging.Log(fmt.Sprintf("uncaught error from initial watch run: %v", err))
	}

	return e.Dispose
}
