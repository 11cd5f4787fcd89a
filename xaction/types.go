package xaction

import (
	"sync"
	"time"
)

// ActionType is a typed action identifier with a stable name, used to
// get compile-time payload typing out of Define/Dispatch call sites
// even though the Bus itself dispatches by the untyped Action.Type
// string underneath.
type ActionType[T any] struct {
	Name string
}

// Define creates an ActionType. The name should be unique within an
// application to avoid two unrelated producers colliding on the same
// Bus.
func Define[T any](name string) ActionType[T] {
	return ActionType[T]{Name: name}
}

// Action is a typed action with payload and metadata, the value Bus
// hands to every subscriber.
type Action[T any] struct {
	Type    string
	Payload T
	Meta    map[string]any
	Time    time.Time
	Source  string
}

// New builds an Action of type t carrying payload.
func (t ActionType[T]) New(payload T) Action[T] {
	return Action[T]{Type: t.Name, Payload: payload, Time: time.Time{}}
}

// Context carries per-dispatch metadata into a handler.
type Context struct {
	Scope  string
	Meta   map[string]any
	Time   time.Time
	Source string
}

// MetaWith returns a copy of c with key/value added to its metadata,
// leaving c itself unchanged.
func (c Context) MetaWith(key string, value any) Context {
	next := make(map[string]any, len(c.Meta)+1)
	for k, v := range c.Meta {
		next[k] = v
	}
	next[key] = value
	return Context{Scope: c.Scope, Meta: next, Time: c.Time, Source: c.Source}
}

// Subscription is a live registration on a Bus. Dispose stops further
// delivery; it is safe to call more than once.
type Subscription interface {
	Dispose()
	IsActive() bool
}

type subscription struct {
	once   sync.Once
	active bool
	mu     sync.Mutex
	remove func()
}

func newSubscription(remove func()) *subscription {
	return &subscription{active: true, remove: remove}
}

func (s *subscription) Dispose() {
	s.once.Do(func() {
		s.mu.Lock()
		s.active = false
		s.mu.Unlock()
		s.remove()
	})
}

func (s *subscription) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
