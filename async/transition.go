package async

import "github.com/corewireui/retcore/reactivity"

// Transition is the state machine behind an animated swap: Pending is
// true from Start until Finish; Leaving/Entering track which side of
// the swap is mid-animation; Entered is true once Finish has run. The
// actual animation (classes, timers) is host-specific and lives outside
// this package; Transition only owns the state spec §4.7 names.
type Transition struct {
	Entering reactivity.Signal[bool]
	Leaving  reactivity.Signal[bool]
	Pending  reactivity.Signal[bool]
	Entered  reactivity.Signal[bool]
}

// NewTransition allocates a Transition in its rest state (not pending,
// nothing entering, leaving or entered).
func NewTransition() *Transition {
	return &Transition{
		Entering: reactivity.CreateSignal(false),
		Leaving:  reactivity.CreateSignal(false),
		Pending:  reactivity.CreateSignal(false),
		Entered:  reactivity.CreateSignal(false),
	}
}

// Start begins a swap: the outgoing subtree starts leaving, the
// incoming one is not yet entering, Pending goes true.
func (t *Transition) Start() {
	t.Pending.Set(true)
	t.Entered.Set(false)
	t.Leaving.Set(true)
	t.Entering.Set(false)
}

// Swap marks the outgoing subtree's leaving animation as handed off to
// the incoming subtree's entering one — called once the outgoing node
// is actually removed from the tree.
func (t *Transition) Swap() {
	t.Leaving.Set(false)
	t.Entering.Set(true)
}

// Finish completes the swap: Entering goes false, Entered goes true,
// Pending goes false.
func (t *Transition) Finish() {
	t.Entering.Set(false)
	t.Entered.Set(true)
	t.Pending.Set(false)
}
