package xaction

import (
	"sync"
	"time"

	"github.com/corewireui/retcore/async"
)

// Future is a promise-like handle for a value that resolves or
// rejects exactly once, sometime after creation. Unlike async.Source,
// which only supports a single Subscribe call, a Future's Then/Catch
// may each be called any number of times, including after the Future
// has already settled — a late subscriber gets the settled result
// delivered to it immediately instead of missing it.
type Future[T any] interface {
	Then(func(T)) Future[T]
	Catch(func(error)) Future[T]
	Await() (T, error)
	Done() bool
}

type future[T any] struct {
	mu        sync.Mutex
	result    T
	err       error
	done      bool
	thenCbs   []func(T)
	catchCbs  []func(error)
	createdAt time.Time
}

// Deferred is the producer side of a Future: exactly one of Resolve or
// Reject should be called, exactly once, to settle it.
type Deferred[T any] struct {
	f *future[T]
}

// NewDeferred creates a pending Future and the Deferred used to settle
// it.
func NewDeferred[T any]() *Deferred[T] {
	return &Deferred[T]{f: &future[T]{createdAt: time.Now()}}
}

// Future returns the read side of d.
func (d *Deferred[T]) Future() Future[T] { return d.f }

// Resolve settles the future successfully. A call after the future has
// already settled is ignored.
func (d *Deferred[T]) Resolve(value T) { d.f.resolve(value) }

// Reject settles the future with an error. A call after the future has
// already settled is ignored.
func (d *Deferred[T]) Reject(err error) { d.f.reject(err) }

// ResolvedFuture returns a Future already settled with value.
func ResolvedFuture[T any](value T) Future[T] {
	d := NewDeferred[T]()
	d.Resolve(value)
	return d.Future()
}

// RejectedFuture returns a Future already settled with err.
func RejectedFuture[T any](err error) Future[T] {
	d := NewDeferred[T]()
	d.Reject(err)
	return d.Future()
}

func (f *future[T]) Then(cb func(T)) Future[T] {
	f.mu.Lock()
	if f.done && f.err == nil {
		result := f.result
		f.mu.Unlock()
		cb(result)
		return f
	}
	if !f.done {
		f.thenCbs = append(f.thenCbs, cb)
	}
	f.mu.Unlock()
	return f
}

func (f *future[T]) Catch(cb func(error)) Future[T] {
	f.mu.Lock()
	if f.done && f.err != nil {
		err := f.err
		f.mu.Unlock()
		cb(err)
		return f
	}
	if !f.done {
		f.catchCbs = append(f.catchCbs, cb)
	}
	f.mu.Unlock()
	return f
}

func (f *future[T]) Await() (T, error) {
	for !f.Done() {
		time.Sleep(time.Millisecond)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.err
}

func (f *future[T]) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

func (f *future[T]) resolve(result T) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return
	}
	f.result = result
	f.done = true
	cbs := f.thenCbs
	f.thenCbs, f.catchCbs = nil, nil
	f.mu.Unlock()

	for _, cb := range cbs {
		cb(result)
	}
}

func (f *future[T]) reject(err error) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return
	}
	f.err = err
	f.done = true
	cbs := f.catchCbs
	f.thenCbs, f.catchCbs = nil, nil
	f.mu.Unlock()

	for _, cb := range cbs {
		cb(err)
	}
}

// FutureSource adapts a Future into an async.Source, the thenable
// contract async.Async is written against: a Future's Then/Catch
// return a chained Future rather than void, which keeps Future from
// directly satisfying async.Source's narrower Subscribe signature, so
// this wraps it in the few lines async.Source's own doc comment
// anticipates.
func FutureSource[T any](f Future[T]) async.Source[T] {
	return async.FromResolver(func(onResolve func(T), onReject func(error)) func() {
		var mu sync.Mutex
		cancelled := false
		f.Then(func(v T) {
			mu.Lock()
			defer mu.Unlock()
			if !cancelled {
				onResolve(v)
			}
		})
		f.Catch(func(err error) {
			mu.Lock()
			defer mu.Unlock()
			if !cancelled {
				onReject(err)
			}
		})
		return func() {
			mu.Lock()
			cancelled = true
			mu.Unlock()
		}
	})
}
