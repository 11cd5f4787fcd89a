// Package widgets provides ready-made xform.Widget implementations:
// plain input/select/checkbox/radio elements bound to a field's
// current value, with the caller supplying the host-specific
// "on:input"/"on:change" handler that writes the new value back via
// state.SetFieldValue (see xform.Widget's doc comment for why a
// host-agnostic widget can't wire that up itself).
package widgets

import (
	"github.com/corewireui/retcore/renderer"
	"github.com/corewireui/retcore/xform"
)

func stringValue(state *xform.State, fieldName string) string {
	if s, ok := state.GetFieldValue(fieldName).(string); ok {
		return s
	}
	return ""
}

func mergedProps(base map[string]any, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// TextInput renders a type="text" input bound to fieldName's current
// value. props may supply "on:input" (a host-specific handler that
// should call state.SetFieldValue then state.ValidateField) and any
// other element prop (e.g. "class", "placeholder").
func TextInput(r *renderer.R, state *xform.State, fieldName string, props map[string]any) any {
	return inputWidget(r, state, fieldName, "text", props)
}

// PasswordInput renders a type="password" input.
func PasswordInput(r *renderer.R, state *xform.State, fieldName string, props map[string]any) any {
	return inputWidget(r, state, fieldName, "password", props)
}

// EmailInput renders a type="email" input.
func EmailInput(r *renderer.R, state *xform.State, fieldName string, props map[string]any) any {
	return inputWidget(r, state, fieldName, "email", props)
}

// NumberInput renders a type="number" input.
func NumberInput(r *renderer.R, state *xform.State, fieldName string, props map[string]any) any {
	return inputWidget(r, state, fieldName, "number", props)
}

func inputWidget(r *renderer.R, state *xform.State, fieldName, inputType string, props map[string]any) any {
	base := map[string]any{
		"type":  inputType,
		"name":  fieldName,
		"id":    fieldName,
		"value": stringValue(state, fieldName),
	}
	return r.C("input", mergedProps(base, props))
}

// TextArea renders a textarea bound to fieldName's current value.
func TextArea(r *renderer.R, state *xform.State, fieldName string, props map[string]any) any {
	base := map[string]any{"name": fieldName, "id": fieldName}
	return r.C("textarea", mergedProps(base, props), r.Text(stringValue(state, fieldName)))
}
