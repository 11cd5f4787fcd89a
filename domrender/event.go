//go:build js && wasm

package domrender

import (
	"syscall/js"

	dom "honnef.co/go/js/dom/v2"
)

// Event is what an "on:<name>" handler receives, the same
// dom.WrapEvent(args[0]) shape the teacher's OnClick/OnEvent use,
// giving handlers typed Target/PreventDefault/StopPropagation methods
// instead of a bare js.Value.
type Event struct {
	dom.Event
}

func wrapEvent(v js.Value) Event {
	if v.IsUndefined() || v.IsNull() {
		return Event{}
	}
	return Event{Event: dom.WrapEvent(v)}
}

// eventOptions turns the "--once--passive--capture" suffix ParseProp
// splits off an "on:" key into the options object addEventListener
// expects.
func eventOptions(flags []string) map[string]interface{} {
	if len(flags) == 0 {
		return nil
	}
	opts := map[string]interface{}{}
	for _, f := range flags {
		switch f {
		case "once":
			opts["once"] = true
		case "passive":
			opts["passive"] = true
		case "capture":
			opts["capture"] = true
		}
	}
	if len(opts) == 0 {
		return nil
	}
	return opts
}

func (o *Ops) bindEvent(n *Node, name string, flags []string, handler func(Event)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		var raw js.Value
		if len(args) > 0 {
			raw = args[0]
		}
		handler(wrapEvent(raw))
		return nil
	})
	n.Listeners[name] = append(n.Listeners[name], &binding{fn: fn})

	if opts := eventOptions(flags); opts != nil {
		n.JS.Call("addEventListener", name, fn, opts)
	} else {
		n.JS.Call("addEventListener", name, fn)
	}
}
