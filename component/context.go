package component

import "github.com/corewireui/retcore/renderer"

// contextKeyType identifies a Context among an instance's own context
// entries. One is allocated per CreateContext call, never compared
// across contexts, so a *Context[T] is its own unforgeable key.
type contextKeyType struct {
	name string
	id   *int
}

// Context is a typed provider/reader pair, per spec §4.2's
// createContext. Values propagate down the component tree by a
// parent-chain walk rather than a copied or literally-shared map: a
// Provider sets a value on its own instance only, and Use walks
// up through parents until it finds an owner, falling back to the
// default. That keeps a Provider from ever mutating an ancestor's or
// sibling's view, the behavior a naive shared map would get wrong.
type Context[T any] struct {
	key          contextKeyType
	defaultValue T
}

// CreateContext returns a new context with the given default value.
// name is carried only for debugging (e.g. error messages), matching
// the spec's optional name argument.
func CreateContext[T any](defaultValue T, name string) *Context[T] {
	return &Context[T]{key: contextKeyType{name: name, id: new(int)}, defaultValue: defaultValue}
}

// Provider returns a component template that shadows ctx with value
// for its children's subtree.
func (ctx *Context[T]) Provider(value T) Template {
	return func(props map[string]any, children ...any) any {
		self := currentSelf
		if self != nil {
			if self.context == nil {
				self.context = make(map[contextKeyType]any)
			}
			self.context[ctx.key] = value
		}
		return func(r *renderer.R) any {
			return r.C(renderer.F, nil, children...)
		}
	}
}

// Use reads ctx's current value as seen from the currently-setting-up
// instance: its own context entry if a Provider set one on it, else
// the nearest ancestor's, else ctx's default.
func (ctx *Context[T]) Use() T {
	for inst := currentSelf; inst != nil; inst = inst.parent {
		if v, ok := inst.context[ctx.key]; ok {
			return v.(T)
		}
	}
	return ctx.defaultValue
}
