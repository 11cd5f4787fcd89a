// Package memo implements the scope-bound memoization helpers (spec
// §4.8): Memo captures the disposal scope active at its call site and
// runs its function at most once against that scope, caching the
// result; UseMemo is the module-scope form, for a memoized function
// declared before any component scope exists, deferring the capture
// until its returned factory is actually invoked inside one. Grounded
// on reactivity/scope.go's run-exactly-once disposer semantics,
// generalized from "run this cleanup once, on dispose" into "run this
// computation once, on first read, against a captured scope."
package memo
