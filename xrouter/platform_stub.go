//go:build !js || !wasm

package xrouter

// stubPlatform keeps navigation state purely in memory: no browser to
// push history onto, no popstate to listen for. Used outside a wasm
// build (unit tests, server-rendered previews via htmlrender).
type stubPlatform struct{}

func newPlatform() platform { return stubPlatform{} }

func (stubPlatform) initialLocation() *Location {
	return &Location{Pathname: "/", Query: map[string]string{}}
}

func (stubPlatform) pushState(nav *Location, replace bool) {}

func (stubPlatform) onPopState(fn func(*Location)) func() {
	return func() {}
}
