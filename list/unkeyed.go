package list

import (
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// UnKeyedProps configures UnKeyed. Entries is read the same way For's
// Entries prop is.
type UnKeyedProps struct {
	Entries any
}

type slot[T any] struct {
	scope *reactivity.Scope
	node  any
	value reactivity.Signal[T]
}

// UnKeyed renders entries with per-position identity instead of For's
// per-key identity: position i always owns the same row and signal for
// as long as the list stays at least i+1 long, and a changed entries
// value at that position is pushed into the signal in place rather than
// causing a remount. Only a change in length creates or disposes rows,
// trading identity stability across reorders for fewer row mounts on
// reorder-heavy updates, per spec §4.8.
func UnKeyed[T any](r *renderer.R, props UnKeyedProps, tmpl func(item reactivity.Signal[T], index int) any) any {
	anchor := r.Ops.CreateAnchor("unkeyed")

	var slots []*slot[T]
	first := true
	var initial []any

	createSlot := func(item T, position int) *slot[T] {
		scope := reactivity.NewScope(reactivity.CurrentScope())
		sl := &slot[T]{scope: scope, value: reactivity.CreateSignal(item)}
		reactivity.RunInScope(scope, func() {
			sl.node = r.EnsureElement(tmpl(sl.value, position))
		})
		return sl
	}

	disposeSlot := func(sl *slot[T]) {
		sl.scope.Dispose()
		if sl.node != nil {
			r.RemoveNode(sl.node)
		}
	}

	reactivity.Watch(func() {
		items := readEntries[T](props.Entries)

		for i := len(items); i < len(slots); i++ {
			disposeSlot(slots[i])
		}
		if len(items) < len(slots) {
			slots = slots[:len(items)]
		}

		for i, it := range items {
			if i < len(slots) {
				slots[i].value.Set(it)
				continue
			}
			sl := createSlot(it, i)
			slots = append(slots, sl)
			if first {
				if sl.node != nil {
					initial = append(initial, sl.node)
				}
				continue
			}
			r.InsertBefore(sl.node, anchor)
		}
	})
	first = false

	if len(initial) == 0 {
		return anchor
	}
	frag := r.CreateFragment()
	r.AppendNode(frag, append(initial, anchor)...)
	return frag
}
