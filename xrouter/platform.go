package xrouter

// platform is the browser-facing half of a Router, split out so the
// matching/navigation-state logic in router.go stays exercisable by a
// plain `go test` run: platform_wasm.go backs it with the real
// History API and window.location, platform_stub.go (built whenever
// the wasm tag isn't set) keeps everything in memory.
type platform interface {
	// initialLocation returns the location the router should start
	// at.
	initialLocation() *Location
	// pushState (replace == false) or replaceState (replace == true)
	// records nav in browser history, if there's a browser to record
	// it in.
	pushState(nav *Location, replace bool)
	// onPopState registers a callback for back/forward navigation and
	// returns a function to stop listening.
	onPopState(fn func(*Location)) func()
}
