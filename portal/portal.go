package portal

import (
	"github.com/corewireui/retcore/component"
	"github.com/corewireui/retcore/control"
	"github.com/corewireui/retcore/list"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// Pair is a portal channel: one or more Inlets feed normalised children
// into it, and the single live Outlet renders the combined, ordered
// result wherever it happens to be mounted.
type Pair struct {
	nodes      reactivity.Signal[[]any]
	generation reactivity.Signal[int]
}

// New allocates an empty, disconnected Pair.
func New() *Pair {
	return &Pair{
		nodes:      reactivity.CreateSignal[[]any](nil),
		generation: reactivity.CreateSignal(0),
	}
}

// Inlet returns a component.Template that, on setup, normalises its
// children and appends them to the Pair's node list, removing exactly
// those same entries again when the Inlet's own scope disposes. It
// renders nothing at its own mount point — its content only ever
// appears through the Pair's Outlet.
func (p *Pair) Inlet() component.Template {
	return func(props map[string]any, children ...any) any {
		return func(r *renderer.R) any {
			added := r.NormalizeChildren(children...)
			p.nodes.Set(append(append([]any{}, p.nodes.Peek()...), added...))

			component.OnDispose(func() {
				addedSet := make(map[any]struct{}, len(added))
				for _, n := range added {
					addedSet[n] = struct{}{}
				}
				cur := p.nodes.Peek()
				next := make([]any, 0, len(cur))
				for _, n := range cur {
					if _, removed := addedSet[n]; !removed {
						next = append(next, n)
					}
				}
				p.nodes.Set(next)
			})
			return nil
		}
	}
}

// Outlet returns a component.Template rendering the Pair's current
// node list via list.For, keyed by node identity. Instantiating a new
// Outlet on the same Pair disposes the previous one's rendered subtree:
// each Outlet captures the Pair's generation counter at setup time, and
// a control.Fn watches only that counter — when a newer Outlet bumps
// it, this one's handler returns nil instead of the list, and Fn's own
// identity-stable-remount logic tears the stale list.For subtree down.
//
// Fn's handler deliberately reads nothing but the generation signal:
// list.For is itself reactive over a Signal Entries value, so handing
// it p.nodes directly lets node additions/removals update the live
// list through For's own watcher. If the handler instead re-read
// p.nodes and returned a fresh closure on every change, Fn would see a
// new identity on every node-list update and tear down and remount the
// whole list.For subtree each time, instead of letting For reconcile
// the change in place.
func (p *Pair) Outlet() component.Template {
	return func(props map[string]any, children ...any) any {
		myGeneration := p.generation.Peek() + 1
		p.generation.Set(myGeneration)

		return func(r *renderer.R) any {
			return control.Fn(r, control.FnProps{Name: "portal-outlet"}, func(ctx any) any {
				if p.generation.Get() != myGeneration {
					return nil
				}
				return func(r *renderer.R) any {
					return list.For(r, list.ForProps[any]{Entries: p.nodes}, func(item any, index any) any {
						return item
					})
				}
			})
		}
	}
}
