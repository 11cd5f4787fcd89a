package xstore

import "github.com/corewireui/retcore/reactivity"

// Store is a registry of named signals. The zero value is not usable;
// construct one with New.
type Store struct {
	values map[string]reactivity.Signal[any]
}

// New returns an empty store.
func New() *Store {
	return &Store{values: map[string]reactivity.Signal[any]{}}
}

// Signal returns key's backing signal, creating it with initial if
// this is the first reference.
func (s *Store) Signal(key string, initial any) reactivity.Signal[any] {
	if sig, ok := s.values[key]; ok {
		return sig
	}
	sig := reactivity.CreateSignal(initial)
	s.values[key] = sig
	return sig
}

// Get returns key's current value, or nil if key was never set.
func (s *Store) Get(key string) any {
	if sig, ok := s.values[key]; ok {
		return sig.Get()
	}
	return nil
}

// Set assigns key's value, creating its backing signal if needed.
func (s *Store) Set(key string, value any) {
	if sig, ok := s.values[key]; ok {
		sig.Set(value)
		return
	}
	s.values[key] = reactivity.CreateSignal[any](value)
}

// Has reports whether key has ever been set or referenced via Signal.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Delete removes key from the store. A later Get/Signal call for the
// same key starts fresh, with no memory of the removed value.
func (s *Store) Delete(key string) {
	delete(s.values, key)
}

// Keys returns every key currently registered, in no particular
// order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

// Typed returns key's backing signal adapted to T, creating it with
// initial if this is the first reference. If an existing entry under
// key holds a value that cannot be asserted or converted to T,
// reactivity.Adapt falls back to T's zero value rather than panicking.
func Typed[T any](s *Store, key string, initial T) reactivity.Signal[T] {
	return reactivity.Adapt[T](s.Signal(key, initial))
}
