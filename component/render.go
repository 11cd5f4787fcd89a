package component

import (
	"sync"

	"github.com/corewireui/retcore/renderer"
)

func init() {
	renderer.RegisterComponentDispatch(dispatch)
}

// dispatch is the function-tag handler R.C installs itself with at
// import time: a Template value used as a tag is instantiated as a
// component, its render function materialized, and its $ref bound.
func dispatch(r *renderer.R, tag any, props map[string]any, children []any) (any, bool) {
	tmpl, ok := tag.(Template)
	if !ok {
		return nil, false
	}
	inst := CreateComponent(r, tmpl, props, children...)
	bindRef(inst.Scope, props, inst)
	return inst.Node, true
}

// bindRef applies the $ref protocol (spec §4.2): set the target on the
// ref when the node is produced, clear it when scope disposes.
func bindRef(scope interface{ OnDispose(func()) }, props map[string]any, target any) {
	ref, ok := props[renderer.RefPropKey]
	if !ok || ref == nil {
		return
	}
	renderer.ApplyRef(ref, target)
	scope.OnDispose(func() { renderer.ApplyRef(ref, nil) })
}

// Handle is returned by Render: a disposer and the expose() payload
// the root component published during setup, if any.
type Handle struct {
	Dispose func()
	Expose  any
}

// Render is the entry point (spec §4.2): it creates an instance bound
// to r, materializes and mounts the emitted node as a child of target,
// and returns a handle exposing Dispose and the root's Expose payload.
func Render(r *renderer.R, target any, tmpl Template, props map[string]any, children ...any) *Handle {
	inst := CreateComponent(r, tmpl, props, children...)
	bindRef(inst.Scope, props, inst)

	if inst.Node != nil {
		r.Ops.AppendNode(target, inst.Node)
	}

	var once sync.Once
	dispose := func() {
		once.Do(func() {
			inst.Scope.Dispose()
			if inst.Node != nil {
				r.RemoveNode(inst.Node)
			}
		})
	}
	return &Handle{Dispose: dispose, Expose: inst.ExposedAPI}
}
