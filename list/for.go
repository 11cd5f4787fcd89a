package list

import (
	"github.com/corewireui/retcore/internal/logging"
	"github.com/corewireui/retcore/internal/uierrors"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// ForProps configures For. Entries is read the way readEntries resolves
// it (signal, slice, or func() []T). Track selects the key: nil means
// identity/value, a string names a struct field, a func(T) any computes
// one directly. Indexed, when true, gives each row an index signal that
// updates in place when the row's position changes; otherwise the row
// template receives a plain int snapshot of the position at creation.
// Expose, if set, receives the imperative API once after the first run.
type ForProps[T any] struct {
	Entries any
	Track   any
	Indexed bool
	Expose  func(API[T])
}

// API is the imperative surface For publishes via Expose, per spec
// §4.6: GetItem/Remove (key-addressed) and Clear.
type API[T any] struct {
	GetItem func(key any) (T, bool)
	Remove  func(key any)
	Clear   func()
}

type row[T any] struct {
	key      any
	data     T
	scope    *reactivity.Scope
	node     any
	indexSig reactivity.Signal[int]
}

// For renders one subtree per entry, keyed by Track, reusing a row's
// scope and node across updates when its key survives and reordering
// nodes to match the new sequence with a bounded number of host moves
// (spec §4.6). Row templates receive (item, index): index is a
// reactivity.Signal[int] when Indexed is set, a plain int snapshot
// otherwise. For owns no fallback for the empty case; wrap it in
// control.If for that.
func For[T any](r *renderer.R, props ForProps[T], tmpl func(item T, index any) any) any {
	anchor := r.Ops.CreateAnchor("for")

	var rows []*row[T]
	byKey := map[any]*row[T]{}
	exposed := false

	warnDup := func(key any) {
		logging.Log((&uierrors.ReconcilerWarning{Kind: "duplicate-key", Detail: key}).Error())
	}

	createRow := func(item T, key any, position int) *row[T] {
		scope := reactivity.NewScope(reactivity.CurrentScope())
		rw := &row[T]{key: key, data: item, scope: scope}
		if props.Indexed {
			rw.indexSig = reactivity.CreateSignal(position)
		}
		reactivity.RunInScope(scope, func() {
			var idxArg any
			if props.Indexed {
				idxArg = rw.indexSig
			} else {
				idxArg = position
			}
			rw.node = r.EnsureElement(tmpl(item, idxArg))
		})
		return rw
	}

	disposeRow := func(rw *row[T]) {
		rw.scope.Dispose()
		if rw.node != nil {
			r.RemoveNode(rw.node)
		}
	}

	first := true
	var initial []any

	reactivity.Watch(func() {
		items := readEntries[T](props.Entries)
		keyFn := buildKeyFunc[T](props.Track, warnDup)

		newKeys := make([]any, len(items))
		for i, it := range items {
			newKeys[i] = keyFn(it, i)
		}
		newKeySet := make(map[any]struct{}, len(newKeys))
		for _, k := range newKeys {
			newKeySet[k] = struct{}{}
		}

		for k, rw := range byKey {
			if _, ok := newKeySet[k]; !ok {
				disposeRow(rw)
				delete(byKey, k)
			}
		}

		newRows := make([]*row[T], len(items))
		for i, it := range items {
			k := newKeys[i]
			if rw, ok := byKey[k]; ok {
				rw.data = it
				newRows[i] = rw
			} else {
				rw := createRow(it, k, i)
				byKey[k] = rw
				newRows[i] = rw
			}
		}

		// Greedy two-pointer match against the previous (reused-only)
		// order: a forward walk that advances only on a literal match
		// identifies a valid (not necessarily longest) common
		// subsequence of rows already in relative order. Those rows
		// need no host move; everything else is repositioned in a
		// single backward pass, each one inserted just before whatever
		// node already sits correctly at the next position — which, by
		// induction, is either the trailing anchor or a node this same
		// pass already placed.
		reused := make([]*row[T], 0, len(rows))
		for _, rw := range rows {
			if _, ok := newKeySet[rw.key]; ok {
				reused = append(reused, rw)
			}
		}
		stable := make([]bool, len(newRows))
		oi := 0
		for i, rw := range newRows {
			if oi < len(reused) && reused[oi] == rw {
				stable[i] = true
				oi++
			}
		}

		if first {
			for _, rw := range newRows {
				if rw.node != nil {
					initial = append(initial, rw.node)
				}
			}
		} else {
			var next any = anchor
			for i := len(newRows) - 1; i >= 0; i-- {
				rw := newRows[i]
				if rw.node == nil {
					continue
				}
				if !stable[i] {
					r.InsertBefore(rw.node, next)
				}
				next = rw.node
			}
		}

		if props.Indexed {
			for i, rw := range newRows {
				if rw.indexSig.Peek() != i {
					rw.indexSig.Set(i)
				}
			}
		}

		rows = newRows

		if !exposed && props.Expose != nil {
			exposed = true
			props.Expose(buildAPI(r, &rows, byKey, disposeRow))
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

func buildAPI[T any](r *renderer.R, rows *[]*row[T], byKey map[any]*row[T], disposeRow func(*row[T])) API[T] {
	return API[T]{
		GetItem: func(key any) (T, bool) {
			rw, ok := byKey[key]
			if !ok {
				var zero T
				return zero, false
			}
			return rw.data, true
		},
		Remove: func(key any) {
			rw, ok := byKey[key]
			if !ok {
				return
			}
			disposeRow(rw)
			delete(byKey, key)
			filtered := (*rows)[:0]
			for _, existing := range *rows {
				if existing != rw {
					filtered = append(filtered, existing)
				}
			}
			*rows = filtered
		},
		Clear: func() {
			for _, rw := range *rows {
				disposeRow(rw)
			}
			for k := range byKey {
				delete(byKey, k)
			}
			*rows = nil
		},
	}
}
