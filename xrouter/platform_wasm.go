//go:build js && wasm

package xrouter

import (
	"net/url"
	"strings"
	"syscall/js"

	dom "honnef.co/go/js/dom/v2"
)

type browserPlatform struct {
	popstateHandler js.Func
}

func newPlatform() platform { return &browserPlatform{} }

func (p *browserPlatform) initialLocation() *Location {
	return readLocation()
}

func readLocation() *Location {
	loc := dom.GetWindow().Location()
	query := map[string]string{}
	if search := loc.Search(); search != "" {
		if parsed, err := url.ParseQuery(strings.TrimPrefix(search, "?")); err == nil {
			for k, vs := range parsed {
				if len(vs) > 0 {
					query[k] = vs[0]
				}
			}
		}
	}
	return &Location{
		Pathname: loc.Pathname(),
		Search:   loc.Search(),
		Hash:     loc.Hash(),
		Query:    query,
	}
}

func (p *browserPlatform) pushState(nav *Location, replace bool) {
	history := js.Global().Get("history")
	url := nav.Pathname + nav.Search + nav.Hash
	if replace {
		history.Call("replaceState", nav.State, "", url)
	} else {
		history.Call("pushState", nav.State, "", url)
	}
}

func (p *browserPlatform) onPopState(fn func(*Location)) func() {
	p.popstateHandler = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(readLocation())
		return nil
	})
	js.Global().Get("window").Call("addEventListener", "popstate", p.popstateHandler)
	return func() {
		js.Global().Get("window").Call("removeEventListener", "popstate", p.popstateHandler)
		p.popstateHandler.Release()
	}
}
