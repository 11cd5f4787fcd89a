package memo

import (
	"sync"

	"github.com/corewireui/retcore/reactivity"
)

// Getter is what Memo and UseMemo's factory return: call it to read
// the memoized value, running the underlying function on first call
// and returning the cached result on every call after that.
type Getter[T any] func() T

// Memo captures the scope active at the call site and returns a Getter
// that runs fn at most once, the first time it's called, with that
// scope reinstalled as current for the duration of the call — so a
// reactivity.OnCleanup registered inside fn attaches to the scope Memo
// was created in, not whatever scope happens to be active whenever the
// Getter finally gets invoked. Every later call returns the cached
// value without rerunning fn.
func Memo[T any](fn func() T) Getter[T] {
	scope := reactivity.CurrentScope()
	var once sync.Once
	var value T
	return func() T {
		once.Do(func() {
			reactivity.RunInScope(scope, func() {
				value = fn()
			})
		})
		return value
	}
}

// UseMemo is the module-scope form of Memo: declared where no
// component scope exists yet, such as a package-level var, it defers
// capturing any scope until its returned factory is invoked inside a
// component's own setup. Each distinct scope the factory gets called
// from is given its own independent Getter, memoized against exactly
// that scope and forgotten again when the scope disposes; calling the
// factory a second time from the same scope returns the Getter already
// built for it rather than starting a fresh memoization.
func UseMemo[T any](fn func() T) func() Getter[T] {
	var mu sync.Mutex
	getters := map[*reactivity.Scope]Getter[T]{}

	return func() Getter[T] {
		scope := reactivity.CurrentScope()

		mu.Lock()
		defer mu.Unlock()
		if g, ok := getters[scope]; ok {
			return g
		}

		g := Memo(fn)
		getters[scope] = g
		scope.OnDispose(func() {
			mu.Lock()
			delete(getters, scope)
			mu.Unlock()
		})
		return g
	}
}
