package renderer

import (
	"fmt"

	"github.com/corewireui/retcore/internal/logging"
	"github.com/corewireui/retcore/reactivity"
)

// Renderable is the shape a branch/child/row template takes once it has
// been resolved past any component wrapping: a function of R producing
// a host node, a concrete node already produced by some R, or a
// primitive (string/number) to be turned into a text node.
type Renderable any

// fragmentTag is the sentinel R.F value: a tag meaning "group these
// children without an owning element".
type fragmentTag struct{}

// F is the fragment sentinel, passed as the tag argument to R.C.
var F = fragmentTag{}

// R is the element factory bound to one NodeOps implementation.
type R struct {
	Ops  NodeOps
	Opts Options
}

// CreateRenderer returns an R bound to ops, configured by the first
// Options argument if given.
func CreateRenderer(ops NodeOps, opts ...Options) *R {
	return &R{Ops: ops, Opts: mergeOptions(opts)}
}

// componentDispatch is registered by the component package at import
// time (via RegisterComponentDispatch) so R.C can dispatch function
// tags without renderer importing component, which would cycle back
// (component materializes its render function's output through an R).
var componentDispatch func(r *R, tag any, props map[string]any, children []any) (any, bool)

// RegisterComponentDispatch installs the function-tag handler. Called
// once from the component package's init.
func RegisterComponentDispatch(fn func(r *R, tag any, props map[string]any, children []any) (any, bool)) {
	componentDispatch = fn
}

// IsNode reports whether x was produced by this renderer's host.
func (r *R) IsNode(x any) bool {
	if x == nil {
		return false
	}
	if _, ok := unmark(x); ok {
		return true
	}
	return r.Ops.IsNode(x)
}

// IsFragment reports whether x is a fragment node.
func (r *R) IsFragment(x any) bool {
	return isFragment(r.Ops, x)
}

// Text creates a text node from value, which may be a string, any
// other primitive (formatted with fmt.Sprint), or a
// reactivity.AnyReadable — in which case the returned node stays bound
// to the signal, updating in place on every change for as long as the
// current scope lives.
func (r *R) Text(value any) any {
	if sig, ok := value.(reactivity.AnyReadable); ok {
		node := r.Ops.CreateTextNode(fmt.Sprint(sig.GetAny()))
		reactivity.Watch(func() {
			r.Ops.SetProps(node, map[string]any{"text:": fmt.Sprint(sig.GetAny())})
		})
		return node
	}
	return r.Ops.CreateTextNode(fmt.Sprint(value))
}

// CreateFragment creates an empty fragment node.
func (r *R) CreateFragment() any {
	return r.Ops.CreateFragment()
}

// InsertBefore inserts node before ref.
func (r *R) InsertBefore(node, ref any) {
	r.Ops.InsertBefore(unwrap(node), unwrapOrNil(ref))
}

// AppendNode appends nodes to parent.
func (r *R) AppendNode(parent any, nodes ...any) {
	unwrapped := make([]any, len(nodes))
	for i, n := range nodes {
		unwrapped[i] = unwrap(n)
	}
	r.Ops.AppendNode(unwrap(parent), unwrapped...)
}

// RemoveNode detaches node.
func (r *R) RemoveNode(node any) {
	r.Ops.RemoveNode(unwrap(node))
}

// EnsureElement resolves a Renderable into a concrete host node: a
// func(*R) any is invoked, a primitive is turned into a text node, and
// an existing node is returned unchanged.
func (r *R) EnsureElement(v Renderable) any {
	switch x := v.(type) {
	case nil:
		return nil
	case func(*R) any:
		return r.EnsureElement(x(r))
	case string:
		return r.Text(x)
	case reactivity.AnyReadable:
		return r.Text(x)
	default:
		if r.IsNode(x) {
			return x
		}
		return r.Text(fmt.Sprint(x))
	}
}

// NormalizeChildren flattens nested slices, turns primitives (and
// signal primitives) into text nodes, and drops nullish/false entries,
// per spec §4.3.
func (r *R) NormalizeChildren(children ...any) []any {
	var out []any
	r.normalizeInto(&out, children)
	return out
}

func (r *R) normalizeInto(out *[]any, children []any) {
	for _, c := range children {
		switch x := c.(type) {
		case nil:
			continue
		case bool:
			if x {
				// `true` alone carries no content; spec treats only
				// nullish/false as droppable, true has no text form.
				continue
			}
			continue
		case []any:
			r.normalizeInto(out, x)
			continue
		case func(*R) any:
			node := r.EnsureElement(x)
			if node != nil {
				*out = append(*out, node)
			}
			continue
		}
		node := r.EnsureElement(c)
		if node != nil {
			*out = append(*out, node)
		}
	}
}

// ExpandFragment returns the list of nodes a fragment currently groups,
// for insertion/removal as a unit. Hosts that don't implement
// FragmentChecker never produce fragments seen here, so this only
// matters for hosts that do.
func (r *R) ExpandFragment(node any) []any {
	if expander, ok := r.Ops.(interface{ FragmentChildren(any) []any }); ok {
		return expander.FragmentChildren(node)
	}
	return []any{node}
}

// C is the element/component/fragment factory: R.c from spec §4.3.
func (r *R) C(tag any, props map[string]any, children ...any) any {
	switch t := tag.(type) {
	case nil:
		return nil
	case fragmentTag:
		frag := r.Ops.CreateFragment()
		r.AppendNode(frag, r.NormalizeChildren(children...)...)
		return frag
	case string:
		name, namespace := r.Opts.resolveTag(t)
		node := r.Ops.CreateNode(name, namespace)
		if props != nil {
			r.Ops.SetProps(node, props)
		}
		r.bindReactiveProps(node, props)
		r.AppendNode(node, r.NormalizeChildren(children...)...)
		return node
	case reactivity.AnyReadable:
		return r.dynamicTag(t)
	default:
		if componentDispatch != nil {
			if node, ok := componentDispatch(r, tag, props, children); ok {
				return node
			}
		}
		logging.Log(fmt.Sprintf("renderer: unrecognized tag %T; producing nothing", tag))
		return nil
	}
}

// dynamicTag implements the "signal tag" case: the subtree remounts
// completely whenever the signal's value changes, the way an untyped
// `Fn` watcher would, scoped to the current reactivity.Scope.
//
// The anchor has no parent yet on the watcher's first, synchronous
// run — it is returned from this call and only gets attached to a
// real parent afterwards, by whichever caller receives it. So the
// first run's node, if any, is wrapped together with the anchor in a
// genuine fragment (whose children get spliced into the eventual real
// parent by the ordinary fragment-handling logic in AppendNode/
// InsertBefore) instead of being inserted relative to the anchor;
// every later run, by which point the anchor has a real parent,
// inserts relative to it as usual.
func (r *R) dynamicTag(sig reactivity.AnyReadable) any {
	anchor := r.Ops.CreateAnchor("dynamic")
	var mounted any
	first := true
	var initial any

	reactivity.Watch(func() {
		v := sig.GetAny()
		if mounted != nil {
			r.RemoveNode(mounted)
			mounted = nil
		}
		node := r.EnsureElement(v)
		mounted = node
		if node == nil {
			return
		}
		if first {
			initial = node
			return
		}
		r.InsertBefore(node, anchor)
	})
	first = false

	if initial == nil {
		return anchor
	}
	frag := r.CreateFragment()
	r.AppendNode(frag, initial, anchor)
	return frag
}

// bindReactiveProps wires props whose value is a signal so the host is
// updated on every change, per the "bind" semantics of spec §4.1.
func (r *R) bindReactiveProps(node any, props map[string]any) {
	for key, val := range props {
		sig, ok := val.(reactivity.AnyReadable)
		if !ok {
			continue
		}
		k, v := key, sig
		reactivity.Watch(func() {
			r.Ops.SetProps(node, map[string]any{k: v.GetAny()})
		})
	}
}

// Render is the entry point: it materializes root (a Renderable) and
// mounts it as a child of target, returning a disposer.
func (r *R) Render(target any, root Renderable) func() {
	scope := reactivity.NewScope(reactivity.CurrentScope())
	var node any
	reactivity.RunInScope(scope, func() {
		node = r.EnsureElement(root)
	})
	if node != nil {
		r.Ops.AppendNode(target, node)
	}
	return func() {
		scope.Dispose()
		if node != nil {
			r.RemoveNode(node)
		}
	}
}

type markedNode struct{ node any }

// MarkNode wraps a node produced by a foreign renderer so downstream
// normalization treats it as an opaque node rather than, say, a slice.
func MarkNode(x any) any { return markedNode{x} }

func unmark(x any) (any, bool) {
	if m, ok := x.(markedNode); ok {
		return m.node, true
	}
	return nil, false
}

func unwrap(x any) any {
	if n, ok := unmark(x); ok {
		return n
	}
	return x
}

func unwrapOrNil(x any) any {
	if x == nil {
		return nil
	}
	return unwrap(x)
}
