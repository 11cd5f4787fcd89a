package xaction

import (
	"sort"
	"sync"
	"time"
)

// Bus dispatches Actions to handlers registered by action type, in
// priority order (ties broken by subscription order).
type Bus interface {
	Dispatch(actionType string, payload any, opts ...DispatchOption) error
	Subscribe(actionType string, handler func(Action[any]) error, opts ...SubOption) Subscription
	SubscribeAny(handler func(Action[any]) error, opts ...SubOption) Subscription
	Scope(name string) Bus
	OnError(handler func(Context, error)) Subscription
}

type entry struct {
	id       int
	handler  func(Action[any]) error
	priority int
	once     bool
	filter   func(any) bool
	active   bool
}

type bus struct {
	mu          sync.RWMutex
	scopePath   string
	nextID      int
	subscribers map[string][]*entry
	anyHandlers []*entry
	onError     func(Context, error)
	parent      *bus
}

// New creates a standalone Bus.
func New() Bus {
	return &bus{scopePath: "root", subscribers: map[string][]*entry{}}
}

var (
	globalBus     Bus
	globalBusOnce sync.Once
)

// Global returns a process-wide singleton Bus, lazily created.
func Global() Bus {
	globalBusOnce.Do(func() { globalBus = New() })
	return globalBus
}

type dispatchOptions struct {
	meta   map[string]any
	source string
}

// DispatchOption customizes a single Dispatch call.
type DispatchOption func(*dispatchOptions)

// WithMeta attaches metadata to the dispatched Action.
func WithMeta(meta map[string]any) DispatchOption {
	return func(o *dispatchOptions) { o.meta = meta }
}

// WithSource tags the dispatched Action with a source identifier.
func WithSource(source string) DispatchOption {
	return func(o *dispatchOptions) { o.source = source }
}

type subOptions struct {
	priority int
	once     bool
	filter   func(any) bool
}

// SubOption customizes a single Subscribe/SubscribeAny call.
type SubOption func(*subOptions)

// SubWithPriority makes higher-priority handlers run first; ties break
// by subscription order.
func SubWithPriority(priority int) SubOption {
	return func(o *subOptions) { o.priority = priority }
}

// SubOnce disposes the subscription automatically after its first
// delivery.
func SubOnce() SubOption {
	return func(o *subOptions) { o.once = true }
}

// SubFilter only delivers actions whose payload satisfies predicate.
func SubFilter(predicate func(payload any) bool) SubOption {
	return func(o *subOptions) { o.filter = predicate }
}

func (b *bus) Dispatch(actionType string, payload any, opts ...DispatchOption) error {
	cfg := &dispatchOptions{}
	for _, o := range opts {
		o(cfg)
	}
	action := Action[any]{
		Type:    actionType,
		Payload: payload,
		Meta:    cfg.meta,
		Time:    time.Now(),
		Source:  cfg.source,
	}

	b.mu.RLock()
	targeted := append([]*entry{}, b.subscribers[actionType]...)
	any_ := append([]*entry{}, b.anyHandlers...)
	onError := b.onError
	b.mu.RUnlock()

	ordered := append(targeted, any_...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].priority != ordered[j].priority {
			return ordered[i].priority > ordered[j].priority
		}
		return ordered[i].id < ordered[j].id
	})

	var firstErr error
	for _, e := range ordered {
		if !e.active {
			continue
		}
		if e.filter != nil && !e.filter(payload) {
			continue
		}
		if err := b.deliver(e, action); err != nil {
			if onError != nil {
				onError(Context{Scope: b.scopePath, Time: action.Time, Source: action.Source}, err)
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		if e.once {
			b.removeEntry(actionType, e)
		}
	}
	return firstErr
}

func (b *bus) deliver(e *entry, action Action[any]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if asErr, ok := r.(error); ok {
				err = asErr
			}
		}
	}()
	return e.handler(action)
}

func (b *bus) removeEntry(actionType string, target *entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	target.active = false
	if actionType == "" {
		b.anyHandlers = removeFrom(b.anyHandlers, target)
		return
	}
	b.subscribers[actionType] = removeFrom(b.subscribers[actionType], target)
}

func removeFrom(list []*entry, target *entry) []*entry {
	out := list[:0:0]
	for _, e := range list {
		if e != target {
			out = append(out, e)
		}
	}
	return out
}

func (b *bus) Subscribe(actionType string, handler func(Action[any]) error, opts ...SubOption) Subscription {
	cfg := &subOptions{}
	for _, o := range opts {
		o(cfg)
	}
	b.mu.Lock()
	b.nextID++
	e := &entry{id: b.nextID, handler: handler, priority: cfg.priority, once: cfg.once, filter: cfg.filter, active: true}
	b.subscribers[actionType] = append(b.subscribers[actionType], e)
	b.mu.Unlock()

	return newSubscription(func() { b.removeEntry(actionType, e) })
}

func (b *bus) SubscribeAny(handler func(Action[any]) error, opts ...SubOption) Subscription {
	cfg := &subOptions{}
	for _, o := range opts {
		o(cfg)
	}
	b.mu.Lock()
	b.nextID++
	e := &entry{id: b.nextID, handler: handler, priority: cfg.priority, once: cfg.once, filter: cfg.filter, active: true}
	b.anyHandlers = append(b.anyHandlers, e)
	b.mu.Unlock()

	return newSubscription(func() { b.removeEntry("", e) })
}

// Scope returns a child Bus whose dispatches and subscriptions are
// entirely independent of the parent except for sharing the parent's
// error handler as a default and reporting a "/"-joined scope path
// (useful for log/trace context, per Context.Scope).
func (b *bus) Scope(name string) Bus {
	b.mu.RLock()
	path := b.scopePath + "/" + name
	onError := b.onError
	b.mu.RUnlock()
	return &bus{scopePath: path, subscribers: map[string][]*entry{}, onError: onError, parent: b}
}

func (b *bus) OnError(handler func(Context, error)) Subscription {
	b.mu.Lock()
	b.onError = handler
	b.mu.Unlock()
	return newSubscription(func() {
		b.mu.Lock()
		b.onError = nil
		b.mu.Unlock()
	})
}
