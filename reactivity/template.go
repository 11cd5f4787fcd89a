package reactivity

import (
	"fmt"
	"strings"
)

// Untrack runs fn without recording any signal it reads as a dependency
// of the currently active consumer, the escape hatch for reads that
// shouldn't drive recomputation.
func Untrack(fn func()) {
	prev := active
	active = nil
	defer func() { active = prev }()
	fn()
}

// Peek reads sig.Peek() — provided as a free function so it reads
// naturally alongside Untrack and Read at call sites that don't already
// hold a concrete Signal[T] value.
func Peek[T any](sig Signal[T]) T {
	return sig.Peek()
}

// Read returns the current value of v, which may be either a Signal[T]
// or a plain T, read-tracked in the first case and returned as-is in
// the second. Used throughout the control-flow and renderer packages to
// accept "signal or static value" props without forcing callers to wrap
// constants in CreateSignal.
func Read[T any](v any) T {
	if sig, ok := v.(Signal[T]); ok {
		return sig.Get()
	}
	return v.(T)
}

// Bind subscribes fn to run once now and on every change of sig,
// registered on the current scope. Equivalent to sig.Connect(fn) but
// reads left-to-right at call sites that pass the signal as a value
// rather than invoking a method on it.
func Bind[T any](sig Signal[T], fn func(T)) func() {
	return sig.Connect(fn)
}

// Template concatenates args into a derived string signal: any argument
// that is a Signal is read (tracked) and re-stringified whenever it
// changes; any other argument is formatted once with fmt.Sprint. It is
// the idiomatic substitute for a tagged template literal interpolating
// signals into a string.
func Template(args ...any) Signal[string] {
	return Computed(func() string {
		var b strings.Builder
		for _, a := range args {
			if r, ok := a.(AnyReadable); ok {
				fmt.Fprint(&b, r.GetAny())
				continue
			}
			fmt.Fprint(&b, a)
		}
		return b.String()
	})
}

// Choose derives a signal that holds a depending on cond's current
// (truthy-compared) value, or b otherwise. cond may be any comparable
// type; zero values are treated as falsy the way the runtime treats
// an empty string, zero number, or false bool as falsy elsewhere.
func Choose[C comparable, T any](cond Signal[C], a, b T) Signal[T] {
	return Computed(func() T {
		if truthy(cond.Get()) {
			return a
		}
		return b
	})
}

// truthy reports whether v is the zero value of its type. Used by
// control-flow primitives (If) and Choose to evaluate arbitrary
// condition signals the way the spec's dynamically-typed condition
// check does.
func truthy[C comparable](v C) bool {
	var zero C
	return v != zero
}
