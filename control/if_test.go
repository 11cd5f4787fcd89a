package control_test

import (
	"testing"

	"github.com/corewireui/retcore/control"
	"github.com/corewireui/retcore/nodegraph"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIfSwapsBranchOnConditionChange(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	cond := reactivity.CreateSignal(true)
	anchor := control.If(r, control.IfProps{Cond: cond},
		func(r *renderer.R) any { return r.C("span", nil, "yes") },
		func(r *renderer.R) any { return r.C("span", nil, "no") },
	)
	r.AppendNode(container, anchor)

	require.Len(t, container.Children, 2)
	assert.Equal(t, "yes", container.Children[0].Children[0].Text)

	cond.Set(false)
	reactivity.Tick()
	require.Len(t, container.Children, 2)
	assert.Equal(t, "no", container.Children[0].Children[0].Text)
}

func TestIfRendersNothingWithoutElseBranch(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	cond := reactivity.CreateSignal(false)
	anchor := control.If(r, control.IfProps{Cond: cond},
		func(r *renderer.R) any { return r.C("span", nil, "yes") },
	)
	r.AppendNode(container, anchor)

	require.Len(t, container.Children, 1)

	cond.Set(true)
	reactivity.Tick()
	require.Len(t, container.Children, 2)
}

func TestIfElsePropWinsOverSecondChild(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	cond := reactivity.CreateSignal(false)
	anchor := control.If(r, control.IfProps{
		Cond: cond,
		Else: func(r *renderer.R) any { return r.C("span", nil, "from-else-prop") },
	},
		func(r *renderer.R) any { return r.C("span", nil, "yes") },
		func(r *renderer.R) any { return r.C("span", nil, "from-child") },
	)
	r.AppendNode(container, anchor)

	require.Len(t, container.Children, 2)
	assert.Equal(t, "from-else-prop", container.Children[0].Children[0].Text)
}

func TestIfDisposesBranchScopeOnSwap(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	cond := reactivity.CreateSignal(true)
	disposed := false
	anchor := control.If(r, control.IfProps{Cond: cond},
		func(r *renderer.R) any {
			reactivity.OnCleanup(func() { disposed = true })
			return r.C("span", nil, "yes")
		},
	)
	r.AppendNode(container, anchor)
	assert.False(t, disposed)

	cond.Set(false)
	reactivity.Tick()
	assert.True(t, disposed)
}
