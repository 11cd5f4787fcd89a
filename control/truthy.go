package control

import "github.com/corewireui/retcore/reactivity"

// readBool resolves v the way spec §4.1's read()/truthiness rules do:
// a bool, a Signal[bool], an AnyReadable, a func() bool, or a bare
// value judged by JS-style truthiness.
func readBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case reactivity.Signal[bool]:
		return x.Get()
	case func() bool:
		return x()
	case reactivity.AnyReadable:
		return truthy(x.GetAny())
	default:
		return truthy(v)
	}
}

// readAny resolves v to its current value if it is signal-shaped,
// else returns v unchanged, per spec §4.1's read(v).
func readAny(v any) any {
	switch x := v.(type) {
	case reactivity.AnyReadable:
		return x.GetAny()
	case func() any:
		return x()
	default:
		return v
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
