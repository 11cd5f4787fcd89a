package widgets

import (
	"github.com/corewireui/retcore/renderer"
	"github.com/corewireui/retcore/xform"
)

// Checkbox renders a type="checkbox" input bound to a boolean field
// value. props may supply "on:change" and any other element prop.
func Checkbox(r *renderer.R, state *xform.State, fieldName string, props map[string]any) any {
	checked, _ := state.GetFieldValue(fieldName).(bool)
	base := map[string]any{
		"type":         "checkbox",
		"name":         fieldName,
		"id":           fieldName,
		"prop:checked": checked,
	}
	return r.C("input", mergedProps(base, props))
}

// CheckboxOption is a single option within a CheckboxGroup.
type CheckboxOption struct {
	Value string
	Label string
}

// CheckboxGroup renders one checkbox per option, bound to a field
// value of type []string holding the selected options' Values. props
// is merged onto every rendered checkbox input.
func CheckboxGroup(r *renderer.R, state *xform.State, fieldName string, options []CheckboxOption, props map[string]any) any {
	selected := map[string]bool{}
	if vals, ok := state.GetFieldValue(fieldName).([]string); ok {
		for _, v := range vals {
			selected[v] = true
		}
	}

	items := make([]any, 0, len(options))
	for _, opt := range options {
		base := map[string]any{
			"type":         "checkbox",
			"name":         fieldName + "[]",
			"id":           fieldName + "_" + opt.Value,
			"value":        opt.Value,
			"prop:checked": selected[opt.Value],
		}
		input := r.C("input", mergedProps(base, props))
		label := r.C("label", map[string]any{"for": fieldName + "_" + opt.Value}, input, r.Text(" "+opt.Label))
		items = append(items, r.C("div", map[string]any{"class": "checkbox-group-item"}, label))
	}
	return r.C("div", map[string]any{"class": "checkbox-group"}, items...)
}
