package widgets

import (
	"testing"

	"github.com/corewireui/retcore/nodegraph"
	"github.com/corewireui/retcore/renderer"
	"github.com/corewireui/retcore/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextInputRendersCurrentValue(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := xform.New([]xform.FieldDef{{Name: "username", InitialValue: "alice"}})

	out := TextInput(r, state, "username", nil)
	n := out.(*nodegraph.Node)
	assert.Equal(t, "input", n.Tag)
	assert.Equal(t, "text", n.Attrs["type"])
	assert.Equal(t, "alice", n.Attrs["value"])
}

func TestTextInputMergesCallerProps(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := xform.New([]xform.FieldDef{{Name: "username"}})

	out := TextInput(r, state, "username", map[string]any{"class": "big"})
	n := out.(*nodegraph.Node)
	assert.Equal(t, "big", n.Attrs["class"])
}

func TestCheckboxReflectsBooleanValue(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := xform.New([]xform.FieldDef{{Name: "agree", InitialValue: true}})

	out := Checkbox(r, state, "agree", nil)
	n := out.(*nodegraph.Node)
	assert.Equal(t, "checkbox", n.Attrs["type"])
	_, checked := n.Attrs["checked"]
	assert.True(t, checked)
}

func TestRadioGroupMarksSelectedOption(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := xform.New([]xform.FieldDef{{Name: "plan", InitialValue: "pro"}})

	out := RadioGroup(r, state, "plan", []RadioOption{
		{Value: "free", Label: "Free"},
		{Value: "pro", Label: "Pro"},
	}, nil)

	group := out.(*nodegraph.Node)
	require.Len(t, group.Children, 2)

	freeInput := group.Children[0].Children[0].Children[0]
	proInput := group.Children[1].Children[0].Children[0]
	_, freeChecked := freeInput.Attrs["checked"]
	_, proChecked := proInput.Attrs["checked"]
	assert.False(t, freeChecked)
	assert.True(t, proChecked)
}

func TestSelectMarksSelectedOption(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := xform.New([]xform.FieldDef{{Name: "country", InitialValue: "fr"}})

	out := Select(r, state, "country", SelectWidgetOptions{
		Options: []SelectOption{{Value: "us", Label: "USA"}, {Value: "fr", Label: "France"}},
	}, nil)

	sel := out.(*nodegraph.Node)
	require.Len(t, sel.Children, 2)
	_, usSelected := sel.Children[0].Attrs["selected"]
	_, frSelected := sel.Children[1].Attrs["selected"]
	assert.False(t, usSelected)
	assert.True(t, frSelected)
}

func TestCheckboxGroupMarksSelectedValues(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := xform.New([]xform.FieldDef{{Name: "tags"}})
	state.SetFieldValue("tags", []string{"go", "rust"})

	out := CheckboxGroup(r, state, "tags", []CheckboxOption{
		{Value: "go", Label: "Go"},
		{Value: "python", Label: "Python"},
	}, nil)

	group := out.(*nodegraph.Node)
	require.Len(t, group.Children, 2)
	goInput := group.Children[0].Children[0].Children[0]
	pyInput := group.Children[1].Children[0].Children[0]
	_, goChecked := goInput.Attrs["checked"]
	_, pyChecked := pyInput.Attrs["checked"]
	assert.True(t, goChecked)
	assert.False(t, pyChecked)
}
