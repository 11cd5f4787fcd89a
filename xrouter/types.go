package xrouter

import "github.com/corewireui/retcore/component"

// Location mirrors the browser's location object: the parsed pieces
// of a URL plus whatever state value navigation carried.
type Location struct {
	Pathname string
	Search   string
	Hash     string
	State    any
	Query    map[string]string
}

// Route declares one routable path. Component is instantiated with
// the RouteMatch captured for Path (Params/Query) stashed in
// its props under the "match" key. MatchFilters validates a captured
// param by name: a string value is a regexp, a func(string) bool is
// run directly.
type Route struct {
	Path         string
	Component    component.Template
	Guard        func(match *RouteMatch) bool
	Redirect     string
	Children     []*Route
	MatchFilters map[string]any

	matcher matcherFunc
}

// NewRoute builds a Route with its matcher precompiled.
func NewRoute(path string, tmpl component.Template) *Route {
	r := &Route{Path: path, Component: tmpl, MatchFilters: map[string]any{}}
	r.matcher = compileMatcher(r)
	return r
}

// RouteMatch is what a matched Route's Component receives: the
// pattern it matched against, the params captured from it (a "*name"
// wildcard segment included, keyed by name, with every remaining path
// segment joined by "/"), and the location's query params.
type RouteMatch struct {
	Path   string
	Params map[string]string
	Query  map[string]string
}

// NavigateOptions configures a Navigate call.
type NavigateOptions struct {
	Replace bool
	State   any
}
