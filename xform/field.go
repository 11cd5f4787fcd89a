package xform

import (
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// FieldOptions configures a single field's rendering within Field.
type FieldOptions struct {
	Label       string
	ShowLabel   bool
	ShowError   bool
	Widget      Widget
	WidgetProps map[string]any
	Class       string
	LabelClass  string
	ErrorClass  string
}

// Field renders fieldName's label, widget and reactive error text as
// a single container element.
func Field(r *renderer.R, state *State, fieldName string, opts FieldOptions) any {
	def := state.fieldDef(fieldName)
	if def == nil {
		return r.C("div", nil, r.Text("field not found: "+fieldName))
	}

	label := opts.Label
	if label == "" {
		label = def.Label
	}
	widget := opts.Widget
	if widget == nil {
		widget = def.Widget
	}

	var children []any
	if opts.ShowLabel && label != "" {
		labelProps := map[string]any{"for": fieldName}
		if opts.LabelClass != "" {
			labelProps["class"] = opts.LabelClass
		}
		children = append(children, r.C("label", labelProps, r.Text(label)))
	}

	if widget != nil {
		widgetProps := opts.WidgetProps
		if widgetProps == nil {
			widgetProps = def.WidgetProps
		}
		children = append(children, widget(r, state, fieldName, widgetProps))
	}

	if opts.ShowError {
		errClass := opts.ErrorClass
		if errClass == "" {
			errClass = "field-error"
		}
		errText := reactivity.Computed(func() string {
			if err := state.GetFieldError(fieldName); err != nil {
				return err.Error()
			}
			return ""
		})
		children = append(children, r.C("div", map[string]any{"class": errClass}, r.Text(errText)))
	}

	containerProps := map[string]any{"class": "form-field"}
	if opts.Class != "" {
		containerProps["class"] = "form-field " + opts.Class
	}
	return r.C("div", containerProps, children...)
}

// DefaultFieldOptions returns a FieldOptions with the label and error
// shown.
func DefaultFieldOptions() FieldOptions {
	return FieldOptions{ShowLabel: true, ShowError: true}
}
