package async

import (
	"github.com/corewireui/retcore/component"
	"github.com/corewireui/retcore/reactivity"
)

// pendingCount is the context Suspense provides and Async reads: a
// shared counter signal tracking how many descendant Async instances
// are still unsettled. A nil default means "no enclosing Suspense" —
// Async simply skips counting in that case.
var pendingCount = component.CreateContext[reactivity.Signal[int]](nil, "retcore/async.pendingCount")
