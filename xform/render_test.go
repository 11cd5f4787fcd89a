package xform

import (
	"testing"

	"github.com/corewireui/retcore/nodegraph"
	"github.com/corewireui/retcore/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesFormWithFieldsAndSubmitButton(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := New([]FieldDef{
		{Name: "username", Label: "Username", Widget: textInputWidget},
		{Name: "email", Label: "Email", Widget: textInputWidget},
	})

	out := Render(r, state, DefaultRenderOptions())

	outer := out.(*nodegraph.Node)
	require.Equal(t, "div", outer.Tag)
	require.Len(t, outer.Children, 1)

	form := outer.Children[0]
	assert.Equal(t, "form", form.Tag)
	assert.Equal(t, "POST", form.Attrs["method"])

	// global error container, 2 fields, button row
	require.Len(t, form.Children, 4)
	buttons := form.Children[3]
	assert.Equal(t, "form-buttons", buttons.Attrs["class"])
	require.Len(t, buttons.Children, 1)
	assert.Equal(t, "button", buttons.Children[0].Tag)
}

func TestRenderUsesCustomSubmitLabel(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := New([]FieldDef{{Name: "email", Widget: textInputWidget}})
	opts := DefaultRenderOptions()
	opts.SubmitLabel = "Save changes"

	out := Render(r, state, opts)
	form := out.(*nodegraph.Node).Children[0]
	buttons := form.Children[len(form.Children)-1]
	btn := buttons.Children[0]
	assert.Equal(t, "Save changes", btn.Children[0].Text)
}
