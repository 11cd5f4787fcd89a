package memo_test

import (
	"testing"

	"github.com/corewireui/retcore/memo"
	"github.com/corewireui/retcore/reactivity"
	"github.com/stretchr/testify/assert"
)

func TestMemoRunsFnOnlyOnce(t *testing.T) {
	scope := reactivity.NewScope(nil)
	var calls int
	var get memo.Getter[int]

	reactivity.RunInScope(scope, func() {
		get = memo.Memo(func() int {
			calls++
			return 42
		})
	})

	assert.Equal(t, 0, calls)
	assert.Equal(t, 42, get())
	assert.Equal(t, 42, get())
	assert.Equal(t, 42, get())
	assert.Equal(t, 1, calls)
}

func TestMemoTiesCleanupToCapturedScope(t *testing.T) {
	outer := reactivity.NewScope(nil)
	inner := reactivity.NewScope(outer)

	var cleaned bool
	var get memo.Getter[string]
	reactivity.RunInScope(outer, func() {
		get = memo.Memo(func() string {
			reactivity.OnCleanup(func() { cleaned = true })
			return "value"
		})
	})

	// Reading the memo from inside an unrelated scope must not attach
	// fn's cleanup to that scope: disposing it should have no effect.
	reactivity.RunInScope(inner, func() {
		assert.Equal(t, "value", get())
	})
	inner.Dispose()
	assert.False(t, cleaned)

	outer.Dispose()
	assert.True(t, cleaned)
}

func TestUseMemoGivesEachScopeItsOwnGetter(t *testing.T) {
	factory := memo.UseMemo(func() int { return 7 })

	scopeA := reactivity.NewScope(nil)
	scopeB := reactivity.NewScope(nil)

	var getA, getA2, getB memo.Getter[int]
	reactivity.RunInScope(scopeA, func() {
		getA = factory()
		getA2 = factory()
	})
	reactivity.RunInScope(scopeB, func() {
		getB = factory()
	})

	assert.Equal(t, 7, getA())
	assert.Equal(t, 7, getA2())
	assert.Equal(t, 7, getB())

	// Same scope, same factory call site: must be the identical Getter,
	// not a second independent memoization.
	var calls int
	factory2 := memo.UseMemo(func() int {
		calls++
		return calls
	})
	var first, second memo.Getter[int]
	reactivity.RunInScope(scopeA, func() {
		first = factory2()
		second = factory2()
	})
	assert.Equal(t, first(), second())
	assert.Equal(t, 1, calls)
}

func TestUseMemoForgetsGetterWhenScopeDisposes(t *testing.T) {
	var constructions int
	factory := memo.UseMemo(func() int {
		constructions++
		return constructions
	})

	scope := reactivity.NewScope(nil)
	reactivity.RunInScope(scope, func() {
		get := factory()
		assert.Equal(t, 1, get())
	})
	scope.Dispose()

	newScope := reactivity.NewScope(nil)
	reactivity.RunInScope(newScope, func() {
		get := factory()
		assert.Equal(t, 2, get())
	})
}
