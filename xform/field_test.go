package xform

import (
	"testing"

	"github.com/corewireui/retcore/nodegraph"
	"github.com/corewireui/retcore/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textInputWidget(r *renderer.R, state *State, fieldName string, props map[string]any) any {
	return r.C("input", map[string]any{
		"name":  fieldName,
		"value": state.GetFieldValue(fieldName),
	})
}

func TestFieldRendersLabelWidgetAndError(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := New([]FieldDef{{Name: "email", Label: "Email", Widget: textInputWidget}})
	state.SetFieldError("email", assertError("bad email"))

	out := Field(r, state, "email", DefaultFieldOptions())

	container, ok := out.(*nodegraph.Node)
	require.True(t, ok)
	assert.Equal(t, "div", container.Tag)
	require.Len(t, container.Children, 3)
	assert.Equal(t, "label", container.Children[0].Tag)
	assert.Equal(t, "input", container.Children[1].Tag)
	assert.Equal(t, "div", container.Children[2].Tag)
	assert.Equal(t, "bad email", container.Children[2].Children[0].Text)
}

func TestFieldOmitsLabelAndErrorWhenDisabled(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := New([]FieldDef{{Name: "email", Label: "Email", Widget: textInputWidget}})

	out := Field(r, state, "email", FieldOptions{})

	container := out.(*nodegraph.Node)
	require.Len(t, container.Children, 1)
	assert.Equal(t, "input", container.Children[0].Tag)
}

func TestFieldReportsMissingField(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	state := New(nil)

	out := Field(r, state, "missing", DefaultFieldOptions())
	container := out.(*nodegraph.Node)
	assert.Contains(t, container.Children[0].Text, "missing")
}

type stringError string

func (e stringError) Error() string { return string(e) }

func assertError(msg string) error { return stringError(msg) }
