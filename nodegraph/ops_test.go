package nodegraph

import (
	"testing"

	"github.com/corewireui/retcore/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSimpleElement(t *testing.T) {
	r := renderer.CreateRenderer(New())
	root := r.C("div", map[string]any{"attr:data-x": "1"}, "hello")

	n, ok := root.(*Node)
	require.True(t, ok)
	assert.Equal(t, "div", n.Tag)
	assert.Equal(t, "1", n.Attrs["data-x"])
	require.Len(t, n.Children, 1)
	assert.Equal(t, "hello", n.Children[0].Text)
}

func TestClickHandlerDispatch(t *testing.T) {
	r := renderer.CreateRenderer(New())
	clicks := 0
	btn := r.C("button", map[string]any{
		"on:click": func(Event) { clicks++ },
	})

	n := btn.(*Node)
	n.Dispatch("click", nil)
	n.Dispatch("click", nil)

	assert.Equal(t, 2, clicks)
}

func TestFragmentFlattensChildrenOnAppend(t *testing.T) {
	r := renderer.CreateRenderer(New())
	frag := r.C(renderer.F, nil, "a", "b")
	container := r.C("div", nil)
	r.AppendNode(container, frag)

	div := container.(*Node)
	require.Len(t, div.Children, 2)
	assert.Equal(t, "a", div.Children[0].Text)
	assert.Equal(t, "b", div.Children[1].Text)
}

func TestSerializeRoundTrip(t *testing.T) {
	r := renderer.CreateRenderer(New())
	ops := r.Ops.(*Ops)
	root := r.C("span", nil, "hi")

	assert.Equal(t, "<span>hi</span>", ops.Serialize(root))
}
