package xrouter

import (
	"net/url"
	"path"
	"strings"

	"github.com/corewireui/retcore/reactivity"
)

// Router owns the routing table and the current Location, exposed as
// a signal so Outlet (and anything else reading UseLocation/UseParams)
// rerenders whenever it changes.
type Router struct {
	location    reactivity.Signal[*Location]
	routes      []*Route
	basePath    string
	beforeGuard func(to *Location) bool
	afterGuard  func(from, to *Location)

	platform   platform
	stopListen func()
	disposed   bool
}

// New creates a router rooted at basePath ("" for the site root).
func New(basePath string) *Router {
	p := newPlatform()
	r := &Router{
		basePath: strings.TrimSuffix(basePath, "/"),
		platform: p,
	}
	r.location = reactivity.CreateSignal(p.initialLocation())
	r.stopListen = p.onPopState(func(loc *Location) {
		if r.disposed {
			return
		}
		old := r.location.Get()
		r.location.Set(loc)
		if r.afterGuard != nil {
			r.afterGuard(old, loc)
		}
	})
	return r
}

// AddRoute registers route with the router.
func (r *Router) AddRoute(route *Route) {
	if route.matcher == nil {
		route.matcher = compileMatcher(route)
	}
	r.routes = append(r.routes, route)
}

// SetBeforeGuard installs a guard run before every navigation; a
// false return cancels it.
func (r *Router) SetBeforeGuard(guard func(to *Location) bool) { r.beforeGuard = guard }

// SetAfterGuard installs a callback run after every completed
// navigation, including browser back/forward.
func (r *Router) SetAfterGuard(guard func(from, to *Location)) { r.afterGuard = guard }

// Location returns the router's current-location signal.
func (r *Router) Location() reactivity.Signal[*Location] { return r.location }

// Navigate changes the current location, recording it in browser
// history (a no-op outside a wasm build) unless blocked by the before
// guard.
func (r *Router) Navigate(to string, opts ...NavigateOptions) {
	cfg := NavigateOptions{}
	if len(opts) > 0 {
		cfg = opts[0]
	}

	full := r.resolvePath(to)
	nav := &Location{Pathname: full, Query: map[string]string{}, State: cfg.State}
	if parsed, err := url.Parse(full); err == nil {
		nav.Pathname = parsed.Path
		nav.Search = parsed.RawQuery
		nav.Hash = parsed.Fragment
		if parsed.RawQuery != "" {
			if q, err := url.ParseQuery(parsed.RawQuery); err == nil {
				for k, vs := range q {
					if len(vs) > 0 {
						nav.Query[k] = vs[0]
					}
				}
			}
		}
	}

	if r.beforeGuard != nil && !r.beforeGuard(nav) {
		return
	}

	r.platform.pushState(nav, cfg.Replace)

	old := r.location.Get()
	r.location.Set(nav)
	if r.afterGuard != nil {
		r.afterGuard(old, nav)
	}
}

func (r *Router) resolvePath(to string) string {
	if strings.HasPrefix(to, "/") {
		if r.basePath == "" || strings.HasPrefix(to, r.basePath) {
			return to
		}
		return r.basePath + to
	}
	return path.Join(r.location.Get().Pathname, to)
}

// MatchRoute returns the first registered route matching pathname
// (with the router's basePath stripped) along with the captured
// match, or (nil, nil) if nothing matches.
func (r *Router) MatchRoute(pathname string) (*Route, *RouteMatch) {
	clean := strings.TrimPrefix(pathname, r.basePath)
	if clean == "" {
		clean = "/"
	}
	for _, route := range r.routes {
		if ok, params := route.matcher(clean); ok {
			return route, &RouteMatch{
				Path:   route.Path,
				Params: params,
				Query:  r.location.Get().Query,
			}
		}
	}
	return nil, nil
}

// Dispose stops listening for browser navigation. Idempotent.
func (r *Router) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	if r.stopListen != nil {
		r.stopListen()
	}
}
