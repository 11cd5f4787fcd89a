// Package xaction is a peripheral, optional pub/sub action bus plus a
// promise-like Future[T], built on top of this module's public
// reactivity/async contract rather than the core itself depending on
// it. Bus.Dispatch sends a typed Action to every Subscribe'd handler
// registered for its type (or for every type, via SubscribeAny),
// highest priority first and by subscription order among equal
// priorities; Future[T] is the concrete thenable that FutureSource
// adapts into the async.Source that async.Async consumes.
//
// Grounded on the teacher's action package: Bus/Action/Context/
// Subscription's shapes are carried over, trimmed to the pub/sub core
// (dispatch, subscribe, scope) — the teacher's typed query/ask layer,
// dispatch middleware, and performance/observability instrumentation
// are a considerably larger surface than this module's domain stack
// has any consumer for, and are dropped rather than ported; see
// DESIGN.md for the itemized justification.
package xaction
