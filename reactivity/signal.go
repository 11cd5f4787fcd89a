package reactivity

import "reflect"

// Signal is the basic reactive primitive: an interior-mutable cell
// holding one value of type T. Reading it inside an active reactive
// computation (a watcher or a computed signal) records that computation
// as a dependent; writing it schedules notification of every current
// dependent.
type Signal[T any] interface {
	// Get returns the current value, read-tracked: if called while a
	// watcher or computed signal is running, that computation becomes
	// a subscriber of this signal.
	Get() T
	// Peek returns the current value without recording a dependency.
	Peek() T
	// Set stores a new value. A no-op if the new value compares equal
	// (reflect.DeepEqual) to the current one.
	Set(v T)
	// Trigger notifies every current subscriber unconditionally, even
	// if the stored value is unchanged — for mutate-in-place values
	// (slices, maps, pointers) that Set's equality check can't see.
	Trigger()
	// Connect subscribes fn to run once now and again on every future
	// change, returning a disposer. Equivalent to Watch(func(){
	// fn(sig.Get()) }), registered on the current scope.
	Connect(fn func(T)) func()
}

// AnyReadable is implemented by every Signal[T], letting generic code
// (Read, Bind, Template) work with signals of unknown element type.
type AnyReadable interface {
	GetAny() any
	PeekAny() any
}

type signalImpl[T any] struct {
	value T
	subs  map[consumer]struct{}
}

// CreateSignal allocates a new Signal holding initial.
func CreateSignal[T any](initial T) Signal[T] {
	return &signalImpl[T]{value: initial, subs: make(map[consumer]struct{})}
}

func (s *signalImpl[T]) Get() T {
	track(s, s.subs)
	return s.value
}

func (s *signalImpl[T]) Peek() T { return s.value }

func (s *signalImpl[T]) GetAny() any  { return s.Get() }
func (s *signalImpl[T]) PeekAny() any { return s.value }

func (s *signalImpl[T]) Set(v T) {
	if reflect.DeepEqual(s.value, v) {
		return
	}
	s.value = v
	s.notify()
}

func (s *signalImpl[T]) Trigger() {
	s.notify()
}

func (s *signalImpl[T]) notify() {
	for _, c := range snapshotConsumers(s.subs) {
		notifyOne(c)
	}
	scheduleFlush()
}

func (s *signalImpl[T]) Connect(fn func(T)) func() {
	return Watch(func() {
		fn(s.Get())
	})
}

func (s *signalImpl[T]) removeSubscriber(c consumer) {
	delete(s.subs, c)
}

// notifyOne isolates a single subscriber's markDirty call: per the
// error-handling design, a misbehaving subscriber must not corrupt the
// dirty queue or stop its siblings from being notified.
func notifyOne(c consumer) {
	defer func() { recover() }()
	c.markDirty()
}
