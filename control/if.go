package control

import (
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// IfProps configures If. Cond is read signal-aware truthiness; True,
// when non-nil, overrides Cond entirely (spec §4.4's "true" prop wins
// over condition); Else, when non-nil, overrides the second child.
type IfProps struct {
	Cond any
	True any
	Else any
}

// If renders children[0] when the condition is truthy, else Else (if
// set) or children[1] (if given), else nothing. A watcher re-evaluates
// the condition on every dependency change; on each change the
// currently-mounted branch's scope is disposed (via OnCleanup, which
// reactivity.Watch runs before every rerun and on final disposal) and
// the newly-selected branch, if any, is mounted fresh — branch swaps
// never attempt an identity-stable remount, matching spec §4.4.
func If(r *renderer.R, props IfProps, children ...any) any {
	anchor := r.Ops.CreateAnchor("if")

	cond := props.Cond
	if props.True != nil {
		cond = props.True
	}

	first := true
	var initial any

	reactivity.Watch(func() {
		on := readBool(cond)

		var branch any
		switch {
		case on && len(children) > 0:
			branch = children[0]
		case !on && props.Else != nil:
			branch = props.Else
		case !on && len(children) > 1:
			branch = children[1]
		}
		if branch == nil {
			if first {
				initial = nil
			}
			return
		}

		scope := reactivity.NewScope(reactivity.CurrentScope())
		var node any
		reactivity.RunInScope(scope, func() {
			node = r.EnsureElement(branch)
		})
		reactivity.OnCleanup(func() {
			scope.Dispose()
			if node != nil {
				r.RemoveNode(node)
			}
		})

		if first {
			initial = node
			return
		}
		if node != nil {
			r.InsertBefore(node, anchor)
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
