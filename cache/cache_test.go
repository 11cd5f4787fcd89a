package cache_test

import (
	"testing"

	"github.com/corewireui/retcore/cache"
	"github.com/corewireui/retcore/component"
	"github.com/corewireui/retcore/nodegraph"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelOf(n *nodegraph.Node) string { return n.Children[0].Text }

// elementLabels collects the text of every element-kind child of
// container, skipping anchors: Parse's per-entry template binds its
// data as a dynamic tag, which introduces an anchor node alongside
// each entry's content, so a plain positional index into
// container.Children doesn't land on content reliably.
func elementLabels(container *nodegraph.Node) []string {
	var out []string
	for _, c := range container.Children {
		if c.Kind == nodegraph.KindElement {
			out = append(out, labelOf(c))
		}
	}
	return out
}

func newTestCache(r *renderer.R) *cache.Cache[string] {
	return cache.New[string](r, func(data reactivity.Signal[string]) any {
		return func(r *renderer.R) any { return r.C("span", nil, data) }
	})
}

func TestCacheAddRendersInOrder(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	c := newTestCache(r)
	c.Add("a", "one")
	c.Add("b", "two")
	r.AppendNode(container, c.Mount())

	require.Len(t, container.Children, 3)
	assert.Equal(t, "one", labelOf(container.Children[0]))
	assert.Equal(t, "two", labelOf(container.Children[1]))
}

func TestCacheAddAfterMountInsertsBeforeAnchor(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	c := newTestCache(r)
	r.AppendNode(container, c.Mount())
	c.Add("a", "one")
	c.Add("b", "two")

	require.Len(t, container.Children, 3)
	assert.Equal(t, "one", labelOf(container.Children[0]))
	assert.Equal(t, "two", labelOf(container.Children[1]))
}

func TestCacheUpdateReassignsWithoutResetup(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	renders := 0
	c := cache.New[string](r, func(data reactivity.Signal[string]) any {
		renders++
		return func(r *renderer.R) any { return r.C("span", nil, data) }
	})
	c.Add("a", "one")
	r.AppendNode(container, c.Mount())

	node, _ := c.Lookup("a")
	require.Equal(t, 1, renders)

	c.Update("a", "updated")
	reactivity.Tick()

	assert.Equal(t, 1, renders)
	assert.Equal(t, "updated", labelOf(container.Children[0]))

	node2, _ := c.Lookup("a")
	assert.Same(t, node, node2)
}

func TestCacheDelPushesToPoolWithoutDisposing(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	disposed := false
	c := cache.New[string](r, func(data reactivity.Signal[string]) any {
		reactivity.OnCleanup(func() { disposed = true })
		return func(r *renderer.R) any { return r.C("span", nil, data) }
	})
	c.Add("a", "one")
	r.AppendNode(container, c.Mount())

	c.Del("a")
	require.Len(t, container.Children, 1)
	assert.False(t, disposed)
	assert.Equal(t, 0, c.Len())
}

func TestCacheAddReusesPooledInstance(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	creations := 0
	c := cache.New[string](r, func(data reactivity.Signal[string]) any {
		creations++
		return func(r *renderer.R) any { return r.C("span", nil, data) }
	})
	c.Add("a", "one")
	r.AppendNode(container, c.Mount())
	require.Equal(t, 1, creations)

	c.Del("a")
	c.Add("b", "two")

	assert.Equal(t, 1, creations)
	require.Len(t, container.Children, 2)
	assert.Equal(t, "two", labelOf(container.Children[0]))
}

func TestCacheClearPoolsEveryLiveEntry(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	c := newTestCache(r)
	c.Add("a", "one")
	c.Add("b", "two")
	r.AppendNode(container, c.Mount())

	c.Clear()
	require.Len(t, container.Children, 1)
	assert.Equal(t, 0, c.Len())
}

func TestCacheDisposalTearsDownPoolAndLive(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	scope := reactivity.NewScope(nil)
	var disposedCount int
	var c *cache.Cache[string]
	reactivity.RunInScope(scope, func() {
		c = cache.New[string](r, func(data reactivity.Signal[string]) any {
			reactivity.OnCleanup(func() { disposedCount++ })
			return func(r *renderer.R) any { return r.C("span", nil, data) }
		})
		c.Add("a", "one")
		c.Add("b", "two")
	})
	r.AppendNode(container, c.Mount())
	c.Del("a")

	scope.Dispose()
	assert.Equal(t, 2, disposedCount)
}

func TestCachedExposesCacheForLookup(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	tmpl := func(props map[string]any, children ...any) any {
		c := cache.Cached[string](r, func(data reactivity.Signal[string]) any {
			return func(r *renderer.R) any { return r.C("span", nil, data) }
		})
		c.Add("x", "hello")
		return func(r *renderer.R) any { return c.Mount() }
	}

	handle := component.Render(r, container, tmpl, nil)
	c, ok := handle.Expose.(*cache.Cache[string])
	require.True(t, ok)

	node, found := c.Lookup("x")
	require.True(t, found)
	assert.Equal(t, "hello", labelOf(node.(*nodegraph.Node)))

	handle.Dispose()
}

func TestParseAppendsNormalisedChildrenInOrder(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	out := cache.Parse(r, "a,b,c", func(source any, append func(child any)) {
		for _, part := range []string{"a", "b", "c"} {
			p := part
			append(func(r *renderer.R) any { return r.C("span", nil, p) })
		}
	})
	r.AppendNode(container, out)

	assert.Equal(t, []string{"a", "b", "c"}, elementLabels(container))
}

func TestParseReparseReplacesChildren(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	tmpl := func(props map[string]any, children ...any) any {
		out := cache.Parse(r, "1", func(source any, append func(child any)) {
			append(func(r *renderer.R) any { return r.C("span", nil, source.(string)) })
		})
		return func(r *renderer.R) any { return out }
	}

	handle := component.Render(r, container, tmpl, nil)
	api, ok := handle.Expose.(cache.ParseAPI)
	require.True(t, ok)

	assert.Equal(t, []string{"1"}, elementLabels(container))

	api.Reparse("2")
	reactivity.Tick()

	assert.Equal(t, []string{"2"}, elementLabels(container))

	handle.Dispose()
}
