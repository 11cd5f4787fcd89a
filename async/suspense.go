package async

import (
	"github.com/corewireui/retcore/component"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// SuspenseProps configures Suspense. Fallback is shown for as long as
// any descendant Async (registered through the shared pending counter
// this component provides) is unsettled.
type SuspenseProps struct {
	Fallback any
}

// Suspense returns a component.Template that renders children under a
// freshly provided pending counter and shows Fallback instead for as
// long as that counter is above zero (spec §4.7). Children are mounted
// once, in their own scope, and stay mounted for Suspense's whole
// lifetime — including while hidden — so a descendant Async's
// in-flight request is never interrupted by the fallback being shown;
// only which of the two produced nodes sits in the live tree changes.
func Suspense(props SuspenseProps) component.Template {
	return func(p map[string]any, children ...any) any {
		counter := reactivity.CreateSignal(0)

		return func(r *renderer.R) any {
			anchor := r.Ops.CreateAnchor("suspense")
			outer := reactivity.CurrentScope()

			childScope := reactivity.NewScope(outer)
			var childNode any
			reactivity.RunInScope(childScope, func() {
				childNode = r.EnsureElement(r.C(pendingCount.Provider(counter), nil, children...))
			})

			fallbackScope := reactivity.NewScope(outer)
			var fallbackNode any
			reactivity.RunInScope(fallbackScope, func() {
				fallbackNode = r.EnsureElement(props.Fallback)
			})

			var shown any
			showingChild := false
			first := true
			var initial any

			reactivity.Watch(func() {
				ready := counter.Get() == 0
				want := fallbackNode
				if ready {
					want = childNode
				}

				if first {
					initial = want
					shown = want
					showingChild = ready
					return
				}
				if ready == showingChild {
					return
				}
				showingChild = ready
				if shown != nil {
					r.RemoveNode(shown)
				}
				shown = want
				if want != nil {
					r.InsertBefore(want, anchor)
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
	}
}
