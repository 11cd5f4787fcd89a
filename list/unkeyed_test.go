package list_test

import (
	"testing"

	"github.com/corewireui/retcore/list"
	"github.com/corewireui/retcore/nodegraph"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnKeyedUpdatesValueInPlaceOnReorder(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	entries := reactivity.CreateSignal([]string{"a", "b", "c"})
	out := list.UnKeyed(r, list.UnKeyedProps{Entries: entries}, func(item reactivity.Signal[string], index int) any {
		return func(r *renderer.R) any { return r.C("span", nil, item) }
	})
	r.AppendNode(container, out)

	require.Len(t, container.Children, 4)
	pos0 := container.Children[0]
	assert.Equal(t, "a", pos0.Children[0].Text)

	entries.Set([]string{"c", "b", "a"})
	reactivity.Tick()

	require.Len(t, container.Children, 4)
	assert.Same(t, pos0, container.Children[0])
	assert.Equal(t, "c", pos0.Children[0].Text)
}

func TestUnKeyedDisposesSlotsOnShrink(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	entries := reactivity.CreateSignal([]string{"a", "b", "c"})
	disposed := 0
	out := list.UnKeyed(r, list.UnKeyedProps{Entries: entries}, func(item reactivity.Signal[string], index int) any {
		return func(r *renderer.R) any {
			reactivity.OnCleanup(func() { disposed++ })
			return r.C("span", nil, item)
		}
	})
	r.AppendNode(container, out)

	entries.Set([]string{"a"})
	reactivity.Tick()

	assert.Equal(t, 2, disposed)
	require.Len(t, container.Children, 2)
}

func TestUnKeyedGrowsNewSlotsOnExpand(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	entries := reactivity.CreateSignal([]string{"a"})
	out := list.UnKeyed(r, list.UnKeyedProps{Entries: entries}, func(item reactivity.Signal[string], index int) any {
		return func(r *renderer.R) any { return r.C("span", nil, item) }
	})
	r.AppendNode(container, out)
	require.Len(t, container.Children, 2)

	entries.Set([]string{"a", "b"})
	reactivity.Tick()

	require.Len(t, container.Children, 3)
	assert.Equal(t, "b", container.Children[1].Children[0].Text)
}
