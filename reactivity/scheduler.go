package reactivity

import (
	"fmt"

	"github.com/corewireui/retcore/internal/logging"
	"github.com/corewireui/retcore/internal/uierrors"
)

// maxFlushPasses bounds how many times the run queue can refill itself
// within a single flush before we conclude the graph is cycling and
// abort with a diagnostic, per the runaway-flush guard.
const maxFlushPasses = 1000

var (
	batchDepth int
	queue      []*effectNode
	queued     map[*effectNode]struct{} = make(map[*effectNode]struct{})
	flushing   bool
)

// enqueueEffect appends e to the pending run queue (deduped) and asks
// for a flush. Called from markDirty, so a signal write always results
// in every dirty watcher running exactly once per flush.
func enqueueEffect(e *effectNode) {
	if _, ok := queued[e]; ok {
		return
	}
	queued[e] = struct{}{}
	queue = append(queue, e)
	scheduleFlush()
}

// scheduleFlush runs the queue now, unless a Batch is open (in which
// case the outermost Batch call flushes on exit) or a flush is already
// in progress higher up the call stack (re-entrant writes from inside a
// watcher just refill the same flush's queue).
func scheduleFlush() {
	if batchDepth > 0 || flushing {
		return
	}
	flush()
}

// Batch defers flushing until fn returns, so that multiple writes made
// within fn produce at most one run per affected watcher instead of one
// run per write. Batches nest; only the outermost exit triggers a flush.
func Batch(fn func()) {
	batchDepth++
	defer func() {
		batchDepth--
		if batchDepth == 0 {
			flush()
		}
	}()
	fn()
}

// Tick runs any watchers currently queued, synchronously. A no-op if
// nothing is pending. Exists for callers that want to force a flush
// point without wrapping a write in Batch (e.g. tests).
func Tick() {
	flush()
}

// flush drains the run queue, isolating each watcher's panic so one
// broken watcher doesn't stop its siblings or corrupt the queue for
// the next pass. If draining the queue never settles within
// maxFlushPasses (watchers keep scheduling each other), it aborts with
// a diagnostic instead of looping forever. Any render error left
// uncaught by the end of the outermost flush is re-thrown to whatever
// called Set/Trigger/Batch/Tick, per the error-handling design.
func flush() {
	if flushing || len(queue) == 0 {
		return
	}
	flushing = true
	defer func() { flushing = false }()

	var firstErr error
	passes := 0
	for len(queue) > 0 {
		passes++
		if passes > maxFlushPasses {
			queue = nil
			queued = make(map[*effectNode]struct{})
			panic(fmt.Errorf("%w after %d passes", uierrors.ErrRunawayFlush, maxFlushPasses))
		}

		pending := queue
		queue = nil
		queued = make(map[*effectNode]struct{})

		for _, e := range pending {
			if err := e.run(); err != nil {
				logging.Log(fmt.Sprintf("%v", err))
				if firstErr == nil {
					firstErr = err
				}
			}
		}
	}

	if firstErr != nil {
		panic(firstErr)
	}
}
