package list

import (
	"fmt"
	"reflect"

	"github.com/corewireui/retcore/reactivity"
)

// readEntries resolves entries into a concrete slice. entries may be a
// reactivity.Signal[[]T], a plain []T, or a func() []T.
func readEntries[T any](entries any) []T {
	switch x := entries.(type) {
	case reactivity.Signal[[]T]:
		return x.Get()
	case []T:
		return x
	case func() []T:
		return x()
	case reactivity.AnyReadable:
		v := x.GetAny()
		if s, ok := v.([]T); ok {
			return s
		}
		return reflectToSlice[T](v)
	default:
		return reflectToSlice[T](entries)
	}
}

// reflectToSlice is the fallback for entries passed through an any-typed
// field (e.g. unmarshalled from props) whose dynamic type is []T but not
// directly assertable due to an intermediate any.
func reflectToSlice[T any](v any) []T {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil
	}
	out := make([]T, rv.Len())
	for i := range out {
		item, ok := rv.Index(i).Interface().(T)
		if !ok {
			return nil
		}
		out[i] = item
	}
	return out
}

// keyFunc computes a stable key for an entry at a given position. track
// is nil (identity/value key), a string (struct field name read via
// reflection), or a func(T) any.
type keyFunc[T any] func(item T, position int) any

// buildKeyFunc builds a keyFunc from For's Track prop. Duplicate keys
// within one pass are disambiguated by occurrence index so the first
// occurrence claims the original row and later duplicates always count
// as new, matching the reconciler's documented tie-break rule; dup is
// invoked once per duplicate so callers can surface a warning.
func buildKeyFunc[T any](track any, dup func(key any)) keyFunc[T] {
	seen := map[any]int{}

	raw := func(item T, position int) any {
		switch t := track.(type) {
		case nil:
			return identityKey(item)
		case func(T) any:
			return t(item)
		case string:
			return fieldKey(item, t)
		default:
			return identityKey(item)
		}
	}

	return func(item T, position int) any {
		k := raw(item, position)
		n := seen[k]
		seen[k] = n + 1
		if n == 0 {
			return k
		}
		if dup != nil {
			dup(k)
		}
		return dedupeKey{base: k, occurrence: n}
	}
}

type dedupeKey struct {
	base       any
	occurrence int
}

// identityKey returns v itself for comparable primitives (the spec's
// "primitive values use the value itself as the key"); for pointers and
// other reference types the pointer value already serves as identity.
// Non-comparable values (slices, maps, funcs) fall back to their
// pointer address via fmt so the key type stays comparable.
func identityKey(v any) any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return fmt.Sprintf("%p", v)
	default:
		return v
	}
}

func fieldKey(v any, field string) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return identityKey(v)
	}
	fv := rv.FieldByName(field)
	if !fv.IsValid() {
		return identityKey(v)
	}
	return identityKey(fv.Interface())
}
