package xrouter

import (
	"reflect"

	"github.com/corewireui/retcore/async"
	"github.com/corewireui/retcore/component"
	"github.com/corewireui/retcore/control"
	"github.com/corewireui/retcore/reactivity"
	"github.com/corewireui/retcore/renderer"
)

// routerKey is the context a RouterProvider publishes and every other
// xrouter component/hook in this subtree reads from, so nested
// Outlets and Links never need the router threaded through props by
// hand.
var routerKey = component.CreateContext[*Router](nil, "xrouter.Router")

// ProviderProps configures RouterProvider.
type ProviderProps struct {
	Router      *Router
	BeforeGuard func(to *Location) bool
	AfterGuard  func(from, to *Location)
}

// RouterProvider makes router available to Outlet/Link/the Use*
// hooks for its children's subtree.
func RouterProvider(props ProviderProps) component.Template {
	if props.BeforeGuard != nil {
		props.Router.SetBeforeGuard(props.BeforeGuard)
	}
	if props.AfterGuard != nil {
		props.Router.SetAfterGuard(props.AfterGuard)
	}
	return func(_ map[string]any, children ...any) any {
		component.OnDispose(props.Router.Dispose)
		return func(r *renderer.R) any {
			return r.C(routerKey.Provider(props.Router), nil, children...)
		}
	}
}

func useRouter() *Router {
	r := routerKey.Use()
	if r == nil {
		panic("xrouter: no RouterProvider found in the component tree")
	}
	return r
}

// UseLocation returns the enclosing router's current-location signal.
func UseLocation() reactivity.Signal[*Location] { return useRouter().Location() }

// UseNavigate returns the enclosing router's navigation function.
func UseNavigate() func(to string, opts ...NavigateOptions) { return useRouter().Navigate }

// UseParams returns a computed signal tracking the current route
// match's captured params.
func UseParams() reactivity.Signal[map[string]string] {
	router := useRouter()
	return reactivity.Computed(func() map[string]string {
		loc := router.Location().Get()
		_, match := router.MatchRoute(loc.Pathname)
		if match == nil {
			return map[string]string{}
		}
		return match.Params
	})
}

// UseQuery returns a computed signal tracking the current location's
// query params.
func UseQuery() reactivity.Signal[map[string]string] {
	router := useRouter()
	return reactivity.Computed(func() map[string]string {
		return router.Location().Get().Query
	})
}

// OutletProps configures Outlet's route-swap animation. Transition is
// optional; when set, Outlet drives it the same way a hand-written
// async.Suspense/Transition consumer would (Start before the new
// route's subtree takes over, Swap once the old one has been removed,
// Finish once the new one is mounted).
type OutletProps struct {
	Transition *async.Transition
	NotFound   func(pathname string) any
}

// Outlet renders whatever route currently matches the router's
// location, remounting only when the matched route (or its dynamic
// segment values baked into Params) actually changes, via control.Fn.
func Outlet(r *renderer.R, props OutletProps) any {
	router := useRouter()
	var lastRoute *Route
	var lastParams map[string]string
	var lastOut any

	return control.Fn(r, control.FnProps{Name: "xrouter.Outlet"}, func(_ any) any {
		loc := router.Location().Get()
		route, match := router.MatchRoute(loc.Pathname)

		if props.Transition != nil {
			props.Transition.Start()
		}

		var out any
		switch {
		case route == nil:
			if props.NotFound != nil {
				out = props.NotFound(loc.Pathname)
			}
		case route.Redirect != "":
			router.Navigate(route.Redirect, NavigateOptions{Replace: true})
			out = nil
		case route.Guard != nil && !route.Guard(match):
			out = nil
		case route.Component != nil:
			if route == lastRoute && reflect.DeepEqual(match.Params, lastParams) {
				out = lastOut
				break
			}
			matchProps := map[string]any{"match": match}
			out = func(r *renderer.R) any {
				return r.C(route.Component, matchProps)
			}
			lastRoute, lastParams, lastOut = route, match.Params, out
		}

		if props.Transition != nil {
			props.Transition.Swap()
			props.Transition.Finish()
		}
		return out
	})
}

// LinkProps configures Link. OnClick, when set, is passed straight
// through as the rendered anchor's "on:click" prop — its concrete
// function type is host-specific (nodegraph.Event, domrender.Event,
// ...), so Link (which only depends on the host-agnostic renderer
// contract) cannot construct one itself; a caller wanting a
// no-full-page-reload navigation supplies a host-typed handler that
// calls preventDefault and then Navigate. Without one, Link is a
// plain anchor and the browser's normal navigation happens, same as
// the teacher's own Link, which carries the identical limitation.
type LinkProps struct {
	To      string
	Replace bool
	State   any
	Class   string
	OnClick any
}

// Link renders an anchor pointed at To.
func Link(r *renderer.R, props LinkProps, children ...any) any {
	anchorProps := map[string]any{"href": props.To}
	if props.Class != "" {
		anchorProps["class"] = props.Class
	}
	if props.OnClick != nil {
		anchorProps["on:click"] = props.OnClick
	}
	return r.C("a", anchorProps, children...)
}

// Redirect navigates to To as soon as it is set up, rendering nothing.
// Unlike the teacher's Navigate (which deferred to comps.OnMount
// because of how that runtime sequenced DOM attachment), a component
// template here already runs inside the owning scope before its
// output is materialized, so the navigation can simply happen inline.
func Redirect(to string, opts ...NavigateOptions) component.Template {
	return func(_ map[string]any, _ ...any) any {
		useRouter().Navigate(to, opts...)
		return nil
	}
}
