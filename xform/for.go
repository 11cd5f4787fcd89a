package xform

import "github.com/corewireui/retcore/renderer"

// ForOptions configures the <form> element FormFor renders.
type ForOptions struct {
	Method string
	Action string
	Class  string

	// OnSubmit is passed straight through as the rendered form's
	// "on:submit" prop. Its concrete handler type is host-specific
	// (nodegraph.Event, domrender.Event, ...), the same limitation
	// Link.OnClick documents in xrouter: a caller wanting validate
	// decides itself whether to call state.ValidateWithCrossField or
	// state.Submit from inside that host-typed handler, typically
	// after calling the event's PreventDefault.
	OnSubmit any
}

// FormFor wraps children in a <form> element configured by opts.
func FormFor(r *renderer.R, opts ForOptions, children ...any) any {
	method := opts.Method
	if method == "" {
		method = "POST"
	}
	props := map[string]any{"method": method}
	if opts.Action != "" {
		props["action"] = opts.Action
	}
	if opts.Class != "" {
		props["class"] = opts.Class
	}
	if opts.OnSubmit != nil {
		props["on:submit"] = opts.OnSubmit
	}
	return r.C("form", props, children...)
}

// GetFormData returns every field's value coerced to a string, empty
// for any non-string value.
func GetFormData(state *State) map[string]string {
	data := make(map[string]string, len(state.schema))
	for _, field := range state.schema {
		if s, ok := state.GetFieldValue(field.Name).(string); ok {
			data[field.Name] = s
		} else {
			data[field.Name] = ""
		}
	}
	return data
}

// SetFormData assigns a batch of field values.
func SetFormData(state *State, data map[string]string) {
	for name, value := range data {
		state.SetFieldValue(name, value)
	}
}
