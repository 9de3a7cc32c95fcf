package event

import (
	"testing"
)

func TestChannel_Fire_InvokesInSubscriptionOrder(t *testing.T) {
	var ch Channel[int]
	var order []string

	ch.Subscribe("a", func(int) { order = append(order, "a") })
	ch.Subscribe("b", func(int) { order = append(order, "b") })
	ch.Subscribe("c", func(int) { order = append(order, "c") })

	ch.Fire(1)

	if len(order) != 3 {
		t.Fatalf("expected 3 invocations, got %d", len(order))
	}
	for i, want := range []string{"a", "b", "c"} {
		if order[i] != want {
			t.Errorf("invocation %d: expected %q, got %q", i, want, order[i])
		}
	}
}

func TestChannel_Fire_NoSubscribers(t *testing.T) {
	var ch Channel[string]

	// Must not panic.
	ch.Fire("nothing listening")

	if ch.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers, got %d", ch.SubscriberCount())
	}
}

func TestChannel_Fire_PassesPayload(t *testing.T) {
	var ch Channel[string]
	var got string

	ch.Subscribe("a", func(v string) { got = v })
	ch.Fire("hello world")

	if got != "hello world" {
		t.Errorf("expected payload %q, got %q", "hello world", got)
	}
}

func TestChannel_Subscribe_SameOwnerMultipleTimes(t *testing.T) {
	var ch Channel[int]
	count := 0

	ch.Subscribe("a", func(int) { count++ })
	ch.Subscribe("a", func(int) { count++ })

	if ch.SubscriberCount() != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", ch.SubscriberCount())
	}

	ch.Fire(1)

	if count != 2 {
		t.Errorf("expected both subscriptions invoked, got %d", count)
	}
}

func TestChannel_Subscribe_NilCallbackIgnored(t *testing.T) {
	var ch Channel[int]

	ch.Subscribe("a", nil)

	if ch.SubscriberCount() != 0 {
		t.Errorf("expected nil callback to be ignored, got %d subscriptions", ch.SubscriberCount())
	}
}

func TestChannel_Subscribe_NonComparableOwnerPanics(t *testing.T) {
	var ch Channel[int]

	defer func() {
		if recover() == nil {
			t.Error("expected Subscribe with a slice owner to panic in debug mode")
		}
	}()

	ch.Subscribe([]int{1}, func(int) {})
}

func TestChannel_Unsubscribe_RemovesAllForOwner(t *testing.T) {
	var ch Channel[int]
	aCount, bCount := 0, 0

	ch.Subscribe("a", func(int) { aCount++ })
	ch.Subscribe("b", func(int) { bCount++ })
	ch.Subscribe("a", func(int) { aCount++ })

	ch.Unsubscribe("a")

	if ch.SubscriberCount() != 1 {
		t.Fatalf("expected 1 subscription after unsubscribe, got %d", ch.SubscriberCount())
	}

	ch.Fire(1)

	if aCount != 0 {
		t.Errorf("expected no invocations for removed owner, got %d", aCount)
	}
	if bCount != 1 {
		t.Errorf("expected 1 invocation for remaining owner, got %d", bCount)
	}
}

func TestChannel_Unsubscribe_UnknownOwnerNoOp(t *testing.T) {
	var ch Channel[int]
	count := 0

	ch.Subscribe("a", func(int) { count++ })
	ch.Unsubscribe("never subscribed")

	ch.Fire(1)

	if count != 1 {
		t.Errorf("expected remaining subscription to be invoked, got %d", count)
	}
}

func TestChannel_Unsubscribe_PreservesOrderOfRemaining(t *testing.T) {
	var ch Channel[int]
	var order []string

	ch.Subscribe("a", func(int) { order = append(order, "a1") })
	ch.Subscribe("b", func(int) { order = append(order, "b") })
	ch.Subscribe("a", func(int) { order = append(order, "a2") })
	ch.Subscribe("c", func(int) { order = append(order, "c") })

	ch.Unsubscribe("a")
	ch.Fire(1)

	if len(order) != 2 || order[0] != "b" || order[1] != "c" {
		t.Errorf("expected remaining subscribers in order [b c], got %v", order)
	}
}

func TestChannel_Fire_SubscriberAddedDuringFireNotInvoked(t *testing.T) {
	var ch Channel[int]
	lateCount := 0

	ch.Subscribe("a", func(int) {
		ch.Subscribe("late", func(int) { lateCount++ })
	})

	ch.Fire(1)

	if lateCount != 0 {
		t.Errorf("expected subscriber added during fire to be skipped, got %d invocations", lateCount)
	}

	ch.Fire(2)

	if lateCount != 1 {
		t.Errorf("expected subscriber added during previous fire to be invoked once, got %d", lateCount)
	}
}

func TestChannel_Fire_SubscriberRemovedDuringFireNotInvoked(t *testing.T) {
	var ch Channel[int]
	bCount := 0

	ch.Subscribe("a", func(int) { ch.Unsubscribe("b") })
	ch.Subscribe("b", func(int) { bCount++ })

	ch.Fire(1)

	if bCount != 0 {
		t.Errorf("expected subscriber removed mid-fire to be skipped, got %d invocations", bCount)
	}
	if ch.SubscriberCount() != 1 {
		t.Errorf("expected 1 subscription after fire, got %d", ch.SubscriberCount())
	}
}

func TestChannel_Fire_SelfUnsubscribeDuringFire(t *testing.T) {
	var ch Channel[int]
	aCount, bCount := 0, 0

	ch.Subscribe("a", func(int) {
		aCount++
		ch.Unsubscribe("a")
	})
	ch.Subscribe("b", func(int) { bCount++ })

	ch.Fire(1)

	if aCount != 1 {
		t.Errorf("expected self-removing subscriber to run once, got %d", aCount)
	}
	if bCount != 1 {
		t.Errorf("expected later subscriber to still run, got %d", bCount)
	}

	ch.Fire(2)

	if aCount != 1 {
		t.Errorf("expected removed subscriber to stay removed, got %d invocations", aCount)
	}
	if bCount != 2 {
		t.Errorf("expected remaining subscriber to run again, got %d invocations", bCount)
	}
}

func TestChannel_Fire_NestedFire(t *testing.T) {
	var ch Channel[int]
	count := 0
	nested := false

	ch.Subscribe("a", func(int) {
		count++
		if !nested {
			nested = true
			ch.Fire(2)
		}
	})

	ch.Fire(1)

	if count != 2 {
		t.Errorf("expected outer and nested fire to each invoke the subscriber, got %d", count)
	}
}

func TestChannel_Fire_PanicPropagates(t *testing.T) {
	var ch Channel[int]
	afterInvoked := false

	ch.Subscribe("boom", func(int) { panic("subscriber failure") })
	ch.Subscribe("after", func(int) { afterInvoked = true })

	defer func() {
		r := recover()
		if r != "subscriber failure" {
			t.Errorf("expected panic value %q, got %v", "subscriber failure", r)
		}
		if afterInvoked {
			t.Error("expected subscribers after the panicking one to be skipped")
		}
	}()

	ch.Fire(1)
}

func TestNewChannel_Empty(t *testing.T) {
	ch := NewChannel[string]()

	if ch.SubscriberCount() != 0 {
		t.Errorf("expected new channel to have 0 subscribers, got %d", ch.SubscriberCount())
	}
}
