package xform

import (
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// RenderOptions configures Render's layout and chrome.
type RenderOptions struct {
	Layout       string // "vertical" (default), "horizontal", "inline"
	ShowLabels   bool
	ShowErrors   bool
	SubmitLabel  string
	SubmitProps  map[string]any
	FormOptions  ForOptions
	FieldOptions FieldOptions
}

// DefaultRenderOptions returns sensible defaults: vertical layout,
// labels and errors both shown.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Layout: "vertical", ShowLabels: true, ShowErrors: true, SubmitLabel: "Submit"}
}

// Render assembles a complete form: one Field per schema entry, a
// global-error container, and a submit button, wrapped in FormFor.
func Render(r *renderer.R, state *State, opts RenderOptions) any {
	if opts.Layout == "" {
		opts.Layout = "vertical"
	}

	fieldOpts := opts.FieldOptions
	fieldOpts.ShowLabel = opts.ShowLabels
	fieldOpts.ShowError = opts.ShowErrors
	if fieldOpts.Class == "" {
		fieldOpts.Class = "form-field-" + opts.Layout
	}

	var fields []any
	for _, def := range state.schema {
		fields = append(fields, Field(r, state, def.Name, fieldOpts))
	}

	globalErrText := reactivity.Computed(func() string {
		if err := state.GetGlobalError(); err != nil {
			return err.Error()
		}
		return ""
	})
	globalErr := r.C("div", map[string]any{"class": "form-global-error"}, r.Text(globalErrText))

	submitLabel := opts.SubmitLabel
	if submitLabel == "" {
		submitLabel = "Submit"
	}
	submitProps := map[string]any{"type": "submit", "class": "btn btn-primary"}
	for k, v := range opts.SubmitProps {
		submitProps[k] = v
	}
	submit := r.C("button", submitProps, r.Text(submitLabel))

	content := append([]any{globalErr}, fields...)
	content = append(content, r.C("div", map[string]any{"class": "form-buttons"}, submit))

	return r.C("div", map[string]any{"class": "form-container form-layout-" + opts.Layout},
		FormFor(r, opts.FormOptions, content...))
}
