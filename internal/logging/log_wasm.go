//go:build js && wasm

package logging

import (
	"fmt"
	"syscall/js"
)

// Log mirrors the !wasm variant but bridges to the browser console when
// one is present, falling back to stdout otherwise (e.g. under wasmtime).
func Log(args ...any) {
	if g := js.Global(); g.Truthy() {
		if c := g.Get("console"); c.Truthy() {
			converted := make([]any, len(args))
			for i, a := range args {
				converted[i] = toJSArg(a)
			}
			c.Call("log", append([]any{"[retcore]"}, converted...)...)
			return
		}
	}
	fmt.Println(append([]any{"[retcore]"}, args...)...)
}

// Logf formats then logs, matching the !wasm variant's signature.
func Logf(format string, args ...any) {
	Log(fmt.Sprintf(format, args...))
}

func toJSArg(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case js.Value:
		return x
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
