package reactivity

// dependency is implemented by anything that can be read-tracked:
// signals and computed signals alike. It lets a consumer detach
// itself when it stops depending on the source (recompute, dispose).
type dependency interface {
	removeSubscriber(c consumer)
}

// consumer is implemented by the two kinds of reactive computation
// that can be "currently running" and therefore record dependencies:
// a watcher (effectNode) and a derived signal (computedNode).
type consumer interface {
	// markDirty is the push half of the push-pull model: called by a
	// dependency synchronously when it changes.
	markDirty()
	// addDependency is called by a dependency's Get() when this
	// consumer is the active reader, recording the new edge.
	addDependency(d dependency)
}

// active is the currently-running consumer, global because the graph
// is single-threaded cooperative (no goroutine ever runs two reactive
// computations concurrently).
var active consumer

// track registers the active consumer (if any) as a subscriber of dep,
// and records the symmetric edge on the consumer's side. Call from a
// dependency's Get().
func track(dep dependency, subs map[consumer]struct{}) {
	if active == nil {
		return
	}
	subs[active] = struct{}{}
	active.addDependency(dep)
}

// withActive runs fn with c installed as the active consumer, restoring
// the previous one afterwards (even on panic).
func withActive(c consumer, fn func()) {
	prev := active
	active = c
	defer func() { active = prev }()
	fn()
}

// snapshotConsumers copies a subscriber set so iteration is safe against
// mutation triggered by the callbacks we're about to invoke (per the
// "snapshot subscribers before iterating" re-entrancy guard).
func snapshotConsumers(subs map[consumer]struct{}) []consumer {
	out := make([]consumer, 0, len(subs))
	for c := range subs {
		out = append(out, c)
	}
	return out
}
