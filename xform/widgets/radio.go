package widgets

import (
	"github.com/corewireui/retcore/renderer"
	"github.com/corewireui/retcore/xform"
)

// RadioOption is a single option within a RadioGroup.
type RadioOption struct {
	Value string
	Label string
}

// RadioGroup renders one radio input per option, bound to a
// string-valued field. props is merged onto every rendered radio
// input (typically an "on:change" handler shared by all of them).
func RadioGroup(r *renderer.R, state *xform.State, fieldName string, options []RadioOption, props map[string]any) any {
	selected := stringValue(state, fieldName)

	items := make([]any, 0, len(options))
	for _, opt := range options {
		radioID := fieldName + "_" + opt.Value
		base := map[string]any{
			"type":         "radio",
			"name":         fieldName,
			"id":           radioID,
			"value":        opt.Value,
			"prop:checked": selected == opt.Value,
		}
		input := r.C("input", mergedProps(base, props))
		label := r.C("label", map[string]any{"for": radioID}, input, r.Text(" "+opt.Label))
		items = append(items, r.C("div", map[string]any{"class": "radio-group-item"}, label))
	}
	return r.C("div", map[string]any{"class": "radio-group"}, items...)
}
