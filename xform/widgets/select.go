package widgets

import (
	"github.com/corewireui/retcore/renderer"
	"github.com/corewireui/retcore/xform"
)

// SelectOption is a single <option> within Select.
type SelectOption struct {
	Value    string
	Label    string
	Disabled bool
}

// SelectWidgetOptions configures Select.
type SelectWidgetOptions struct {
	Options     []SelectOption
	Placeholder string
	Multiple    bool
}

// Select renders a <select> bound to fieldName. For a single select
// the field value is a string; for Multiple, a []string. props is
// merged onto the rendered <select> element (typically "on:change").
func Select(r *renderer.R, state *xform.State, fieldName string, opts SelectWidgetOptions, props map[string]any) any {
	selected := map[string]bool{}
	if opts.Multiple {
		if vals, ok := state.GetFieldValue(fieldName).([]string); ok {
			for _, v := range vals {
				selected[v] = true
			}
		}
	} else {
		selected[stringValue(state, fieldName)] = true
	}

	var options []any
	if opts.Placeholder != "" && !opts.Multiple {
		options = append(options, r.C("option", map[string]any{
			"value":         "",
			"attr:disabled": true,
			"prop:selected": stringValue(state, fieldName) == "",
		}, r.Text(opts.Placeholder)))
	}
	for _, opt := range opts.Options {
		options = append(options, r.C("option", map[string]any{
			"value":         opt.Value,
			"attr:disabled": opt.Disabled,
			"prop:selected": selected[opt.Value],
		}, r.Text(opt.Label)))
	}

	base := map[string]any{"name": fieldName, "id": fieldName}
	if opts.Multiple {
		base["attr:multiple"] = true
	}
	return r.C("select", mergedProps(base, props), options...)
}
