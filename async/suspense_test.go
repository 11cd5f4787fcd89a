package async_test

import (
	"testing"

	"github.com/corewireui/retcore/async"
	"github.com/corewireui/retcore/component"
	"github.com/corewireui/retcore/nodegraph"
	"github.com/corewireui/retcore/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuspenseShowsFallbackWhileChildAsyncPending(t *testing.T) {
	r := renderer.CreateRenderer(nodegraph.New())
	container := r.C("div", nil).(*nodegraph.Node)

	var onResolve func(string)
	src := async.FromResolver(func(res func(string), rej func(error)) func() {
		onResolve = res
		return func() {}
	})

	child := func(props map[string]any, children ...any) any {
		return func(r *renderer.R) any {
			return async.Async(r, async.AsyncProps[string]{
				Future:   src,
				Fallback: func(r *renderer.R) any { return r.C("span", nil, "async-fallback") },
			}, func(v string) any {
				return func(r *renderer.R) any { return r.C("span", nil, v) }
			})
		}
	}

	tmpl := async.Suspense(async.SuspenseProps{
		Fallback: func(r *renderer.R) any { return r.C("span", nil, "suspense-fallback") },
	})

	childRef := func(r *renderer.R) any { return r.C(component.Template(child), nil) }
	handle := component.Render(r, container, tmpl, nil, childRef)

	// fallback span + Suspense's own trailing anchor.
	require.Len(t, container.Children, 2)
	assert.Equal(t, "suspense-fallback", container.Children[0].Children[0].Text)

	onResolve("ready")

	// Async's resolved span + Async's anchor + Suspense's anchor: once
	// counter reaches 0, the child's node (a fragment wrapping Async's
	// own content and anchor) replaces the fallback, and fragment
	// insertion flattens its children into container directly.
	require.Len(t, container.Children, 3)
	assert.Equal(t, "ready", container.Children[0].Children[0].Text)

	handle.Dispose()
}
