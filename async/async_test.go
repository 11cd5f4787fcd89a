package async_test

import (
	"errors"
	"testing"

	"github.com/corewireui/retcore/async"
	"github.com/corewireui/retcore/nodegraph"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncShowsFallbackThenResolvedChild(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	var onResolve func(int)
	src := async.FromResolver(func(res func(int), rej func(error)) func() {
		onResolve = res
		return func() {}
	})

	out := async.Async(r, async.AsyncProps[int]{
		Future:   src,
		Fallback: func(r *renderer.R) any { return r.C("span", nil, "loading") },
	}, func(v int) any {
		return func(r *renderer.R) any { return r.C("span", nil, "got it") }
	})
	r.AppendNode(container, out)

	require.Len(t, container.Children, 2)
	assert.Equal(t, "loading", container.Children[0].Children[0].Text)

	onResolve(42)
	require.Len(t, container.Children, 2)
	assert.Equal(t, "got it", container.Children[0].Children[0].Text)
}

func TestAsyncResolvesSynchronously(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	out := async.Async(r, async.AsyncProps[int]{
		Future:   async.Resolved(7),
		Fallback: func(r *renderer.R) any { return r.C("span", nil, "loading") },
	}, func(v int) any {
		return func(r *renderer.R) any { return r.C("span", nil, "seven") }
	})
	r.AppendNode(container, out)

	require.Len(t, container.Children, 2)
	assert.Equal(t, "seven", container.Children[0].Children[0].Text)
}

func TestAsyncRejectionMountsCatch(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	out := async.Async(r, async.AsyncProps[int]{
		Future:   async.Rejected[int](errors.New("nope")),
		Fallback: func(r *renderer.R) any { return r.C("span", nil, "loading") },
		Catch: func(err error) any {
			return func(r *renderer.R) any { return r.C("span", nil, "failed: "+err.Error()) }
		},
	}, func(v int) any {
		return func(r *renderer.R) any { return r.C("span", nil, "unreachable") }
	})
	r.AppendNode(container, out)

	require.Len(t, container.Children, 2)
	assert.Contains(t, container.Children[0].Children[0].Text, "nope")
}

func TestAsyncCancelsOnDisposal(t *testing.T) {
	scope := reactivity.NewScope(nil)
	var cancelled bool

	reactivity.RunInScope(scope, func() {
		r := renderer.CreateRenderer(nodegraph.New())
		src := async.FromResolver(func(res func(int), rej func(error)) func() {
			return func() { cancelled = true }
		})
		async.Async(r, async.AsyncProps[int]{Future: src}, func(v int) any { return nil })
	})

	scope.Dispose()
	assert.True(t, cancelled)
}
