package control

import (
	"reflect"
	"unsafe"

	"github.com/corewireui/retcore/internal/logging"
	"github.com/corewireui/retcore/internal/uierrors"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// FnProps configures Fn. Ctx is read signal-aware (spec §4.5) and
// passed to the handler on every run. Catch, if set, produces a
// fallback subtree from a recovered error. Name identifies the
// boundary in logged/wrapped errors.
type FnProps struct {
	Ctx   any
	Catch func(err error, name string, ctx any) any
	Name  string
}

// Fn renders the subtree handler produces, rerunning handler inside a
// tracking scope whenever a signal it read changes. The inner scope
// that owns handler's subtree is disposed and recreated only when the
// returned value's identity changes (func values compare by the
// closure they refer to, since Go does not allow comparing two non-nil
// funcs directly; nodes and primitives compare by ==) — a handler that
// keeps returning the same render function value avoids remounting,
// while one that builds a fresh closure on every run remounts every
// time, per spec §4.5. A panic during handler or subtree setup is recovered, wrapped,
// logged, and if Catch (or a func(error, string, any) any second
// child) is provided, used to mount a fallback subtree instead.
func Fn(r *renderer.R, props FnProps, handler func(ctx any) any, children ...any) any {
	anchor := r.Ops.CreateAnchor("fn")

	catch := props.Catch
	if catch == nil && len(children) > 0 {
		if c, ok := children[0].(func(error, string, any) any); ok {
			catch = c
		}
	}

	var lastIdentity any
	haveMount := false
	first := true
	var initial any

	// swap tears down the previously mounted inner scope (if any) and
	// mounts next in a fresh one. This is deliberately NOT done via
	// reactivity.OnCleanup: a watcher's cleanups all run unconditionally
	// at the start of its next rerun, which would tear down the current
	// mount even on a rerun that decides, by identity, to keep it — so
	// Fn owns innerScope/mountedNode itself and only disposes them here,
	// right before installing a replacement. The final, still-live
	// scope is reclaimed when its parent (the scope active when Fn was
	// called) is eventually disposed, same as any other scope child.
	//
	// On the watcher's first run the anchor has no parent yet, so the
	// node is captured into initial instead of being inserted; Fn wraps
	// it with the anchor in a fragment before returning, the same fix
	// dynamicTag and If use.
	var innerScope *reactivity.Scope
	var mountedNode any

	swap := func(next any) {
		if innerScope != nil {
			innerScope.Dispose()
			innerScope = nil
		}
		if mountedNode != nil {
			r.RemoveNode(mountedNode)
			mountedNode = nil
		}

		scope := reactivity.NewScope(reactivity.CurrentScope())
		innerScope = scope
		var node any
		reactivity.RunInScope(scope, func() {
			node = r.EnsureElement(next)
		})
		mountedNode = node

		if first {
			initial = node
			return
		}
		if node != nil {
			r.InsertBefore(node, anchor)
		}
	}

	reactivity.Watch(func() {
		ctx := readAny(props.Ctx)
		result, err := runHandler(props.Name, handler, ctx)
		if err != nil {
			logging.Log(err.Error())
			lastIdentity = nil
			haveMount = false
			if catch != nil {
				swap(catch(err, props.Name, ctx))
				haveMount = true
			} else {
				swap(nil)
			}
			return
		}

		id := identityOf(result)
		if haveMount && id == lastIdentity {
			return
		}
		lastIdentity = id
		haveMount = true
		if _, err := runHandler(props.Name, func(any) any { swap(result); return nil }, nil); err != nil {
			logging.Log(err.Error())
			lastIdentity = nil
			haveMount = false
			if catch != nil {
				swap(catch(err, props.Name, ctx))
				haveMount = true
			} else {
				swap(nil)
			}
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

func runHandler(name string, handler func(any) any, ctx any) (result any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = uierrors.RecoverRender(name, rec)
		}
	}()
	result = handler(ctx)
	return
}

// identityOf returns a comparable stand-in for v: for a func, the
// pointer to the closure value it refers to (the interface's data
// word, so two closures built from the same literal differ while
// copies of one func value match), or v itself for anything already
// comparable (nodes are pointers; primitives compare by value).
func identityOf(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		return (*[2]unsafe.Pointer)(unsafe.Pointer(&v))[1]
	}
	return v
}
