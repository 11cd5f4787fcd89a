package xaction_test

import (
	"errors"
	"testing"

	"github.com/corewireui/retcore/xaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDispatchDeliversToSubscriber(t *testing.T) {
	b := xaction.New()
	var got any
	b.Subscribe("greet", func(a xaction.Action[any]) error {
		got = a.Payload
		return nil
	})

	require.NoError(t, b.Dispatch("greet", "hello"))
	assert.Equal(t, "hello", got)
}

func TestBusSubscribeAnyReceivesEveryType(t *testing.T) {
	b := xaction.New()
	var seen []string
	b.SubscribeAny(func(a xaction.Action[any]) error {
		seen = append(seen, a.Type)
		return nil
	})

	b.Dispatch("a", 1)
	b.Dispatch("b", 2)
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestBusOrdersByPriorityThenSubscriptionOrder(t *testing.T) {
	b := xaction.New()
	var order []string
	b.Subscribe("x", func(xaction.Action[any]) error { order = append(order, "first"); return nil })
	b.Subscribe("x", func(xaction.Action[any]) error { order = append(order, "high"); return nil }, xaction.SubWithPriority(10))
	b.Subscribe("x", func(xaction.Action[any]) error { order = append(order, "second"); return nil })

	b.Dispatch("x", nil)
	assert.Equal(t, []string{"high", "first", "second"}, order)
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	b := xaction.New()
	calls := 0
	sub := b.Subscribe("x", func(xaction.Action[any]) error { calls++; return nil })

	b.Dispatch("x", nil)
	sub.Dispose()
	b.Dispatch("x", nil)

	assert.Equal(t, 1, calls)
	assert.False(t, sub.IsActive())
}

func TestBusSubOnceDisposesAfterFirstDelivery(t *testing.T) {
	b := xaction.New()
	calls := 0
	b.Subscribe("x", func(xaction.Action[any]) error { calls++; return nil }, xaction.SubOnce())

	b.Dispatch("x", nil)
	b.Dispatch("x", nil)
	assert.Equal(t, 1, calls)
}

func TestBusSubFilterSkipsNonMatching(t *testing.T) {
	b := xaction.New()
	var got []int
	b.Subscribe("x", func(a xaction.Action[any]) error {
		got = append(got, a.Payload.(int))
		return nil
	}, xaction.SubFilter(func(p any) bool { return p.(int) > 1 }))

	b.Dispatch("x", 1)
	b.Dispatch("x", 2)
	assert.Equal(t, []int{2}, got)
}

func TestBusDispatchReturnsHandlerError(t *testing.T) {
	b := xaction.New()
	want := errors.New("boom")
	b.Subscribe("x", func(xaction.Action[any]) error { return want })

	err := b.Dispatch("x", nil)
	assert.Equal(t, want, err)
}

func TestBusOnErrorReceivesHandlerErrors(t *testing.T) {
	b := xaction.New()
	want := errors.New("boom")
	var gotErr error
	b.OnError(func(ctx xaction.Context, err error) { gotErr = err })
	b.Subscribe("x", func(xaction.Action[any]) error { return want })

	b.Dispatch("x", nil)
	assert.Equal(t, want, gotErr)
}

func TestBusScopeIsIndependentOfParent(t *testing.T) {
	parent := xaction.New()
	child := parent.Scope("child")

	parentCalls, childCalls := 0, 0
	parent.Subscribe("x", func(xaction.Action[any]) error { parentCalls++; return nil })
	child.Subscribe("x", func(xaction.Action[any]) error { childCalls++; return nil })

	parent.Dispatch("x", nil)
	assert.Equal(t, 1, parentCalls)
	assert.Equal(t, 0, childCalls)

	child.Dispatch("x", nil)
	assert.Equal(t, 1, parentCalls)
	assert.Equal(t, 1, childCalls)
}

func TestGlobalBusReturnsSameInstance(t *testing.T) {
	assert.Same(t, xaction.Global(), xaction.Global())
}
