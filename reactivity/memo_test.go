package reactivity

import "testing"

func TestComputedLazyEvaluationAndCaching(t *testing.T) {
	count := CreateSignal(1)
	calls := 0
	computed := Computed(func() int {
		calls++
		return count.Get() * 2
	})

	if calls != 0 {
		t.Fatalf("calc calls before Get = %d, want 0", calls)
	}

	if v := computed.Get(); v != 2 {
		t.Fatalf("first computed.Get() = %d, want 2", v)
	}
	if calls != 1 {
		t.Fatalf("calc calls after first Get = %d, want 1", calls)
	}

	_ = computed.Get()
	_ = computed.Get()
	if calls != 1 {
		t.Fatalf("calc calls after repeated Get = %d, want 1", calls)
	}
}

func TestComputedRecomputeOnDepChangeAndWatchPropagation(t *testing.T) {
	s := CreateSignal(2)
	calls := 0
	computed := Computed(func() int {
		calls++
		return s.Get() + 1
	})

	runs := 0
	Watch(func() {
		_ = computed.Get()
		runs++
	})

	if runs != 1 {
		t.Fatalf("initial runs = %d, want 1", runs)
	}
	if calls != 1 {
		t.Fatalf("initial calc calls = %d, want 1", calls)
	}

	s.Set(3)
	if calls != 2 {
		t.Fatalf("calc calls after dep change = %d, want 2", calls)
	}
	if runs != 2 {
		t.Fatalf("watch runs after dep change = %d, want 2", runs)
	}
}

func TestComputedNotAffectedByUnrelatedSignal(t *testing.T) {
	dep := CreateSignal(1)
	unrelated := CreateSignal(100)
	calls := 0
	computed := Computed(func() int {
		calls++
		return dep.Get() * 3
	})

	_ = computed.Get()
	if calls != 1 {
		t.Fatalf("initial calls = %d, want 1", calls)
	}

	unrelated.Set(200)
	if calls != 1 {
		t.Fatalf("calls after unrelated set = %d, want 1", calls)
	}
}

func TestChainedComputeds(t *testing.T) {
	base := CreateSignal(1)
	calls1, calls2 := 0, 0
	c1 := Computed(func() int {
		calls1++
		return base.Get() + 1
	})
	c2 := Computed(func() int {
		calls2++
		return c1.Get() * 2
	})

	runs := 0
	Watch(func() {
		_ = c2.Get()
		runs++
	})

	if runs != 1 || calls1 != 1 || calls2 != 1 {
		t.Fatalf("init runs=%d calls1=%d calls2=%d, want 1,1,1", runs, calls1, calls2)
	}

	base.Set(2)
	if calls1 != 2 {
		t.Fatalf("calls1 after base change = %d, want 2", calls1)
	}
	if calls2 != 2 {
		t.Fatalf("calls2 after base change = %d, want 2", calls2)
	}
	if runs != 2 {
		t.Fatalf("watch runs after base change = %d, want 2", runs)
	}
}

func TestComputedNeverReadIsNeverComputed(t *testing.T) {
	base := CreateSignal(1)
	calls := 0
	_ = Computed(func() int {
		calls++
		return base.Get()
	})

	base.Set(2)
	base.Set(3)
	if calls != 0 {
		t.Fatalf("calc calls for an unread computed = %d, want 0", calls)
	}
}
