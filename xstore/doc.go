// Package xstore is a peripheral, optional global store: a registry
// of named reactivity signals, so unrelated parts of an application
// can share state by key instead of threading it through component
// props or a hand-rolled singleton.
//
// Grounded on the teacher's appmanager.AppStore, generalized from a
// single hardcoded AppState struct to an arbitrary set of named
// entries, each backed directly by a reactivity.Signal rather than by
// reactivity.CreateStore's nested-path Select/Set — a named entry
// here already is the unit of sharing, so there is no nested-struct
// addressing left to do once AppState's one hardcoded shape is gone.
package xstore
