package portal_test

import (
	"testing"

	"github.com/corewireui/retcore/component"
	"github.com/corewireui/retcore/nodegraph"
	"github.com/corewireui/retcore/portal"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spanTexts(container *nodegraph.Node) []string {
	var out []string
	for _, c := range container.Children {
		if c.Kind == nodegraph.KindElement {
			out = append(out, c.Children[0].Text)
		}
	}
	return out
}

func TestOutletRendersInletChildrenInOrder(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	p := portal.New()

	outlet := component.Render(r, container, p.Outlet(), nil)
	inlet := component.Render(r, container, p.Inlet(), nil,
		func(r *renderer.R) any { return r.C("span", nil, "one") },
		func(r *renderer.R) any { return r.C("span", nil, "two") },
	)
	reactivity.Tick()

	assert.Equal(t, []string{"one", "two"}, spanTexts(container))

	inlet.Dispose()
	outlet.Dispose()
}

func TestOutletAppendsSecondInletAfterFirst(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	p := portal.New()

	outlet := component.Render(r, container, p.Outlet(), nil)
	inletA := component.Render(r, container, p.Inlet(), nil,
		func(r *renderer.R) any { return r.C("span", nil, "a") },
	)
	reactivity.Tick()
	inletB := component.Render(r, container, p.Inlet(), nil,
		func(r *renderer.R) any { return r.C("span", nil, "b") },
	)
	reactivity.Tick()

	assert.Equal(t, []string{"a", "b"}, spanTexts(container))

	inletA.Dispose()
	inletB.Dispose()
	outlet.Dispose()
}

func TestOutletRemovesChildrenWhenInletDisposes(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	p := portal.New()

	outlet := component.Render(r, container, p.Outlet(), nil)
	inlet := component.Render(r, container, p.Inlet(), nil,
		func(r *renderer.R) any { return r.C("span", nil, "gone-soon") },
	)
	reactivity.Tick()
	require.Equal(t, []string{"gone-soon"}, spanTexts(container))

	inlet.Dispose()
	reactivity.Tick()

	assert.Empty(t, spanTexts(container))

	outlet.Dispose()
}

func TestSecondOutletSupersedesFirst(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	p := portal.New()

	outletA := component.Render(r, container, p.Outlet(), nil)
	inlet := component.Render(r, container, p.Inlet(), nil,
		func(r *renderer.R) any { return r.C("span", nil, "only") },
	)
	reactivity.Tick()
	require.Equal(t, []string{"only"}, spanTexts(container))

	outletB := component.Render(r, container, p.Outlet(), nil)
	reactivity.Tick()

	// outletA's list.For subtree is disposed and removed; outletB's own
	// mount renders the same shared node list in its place.
	assert.Equal(t, []string{"only"}, spanTexts(container))

	inlet.Dispose()
	outletA.Dispose()
	outletB.Dispose()
}
