package event

import (
	"sync"
	"testing"
)

func TestBus_Subscribe(t *testing.T) {
	bus := NewBus()

	called := false
	id := bus.Subscribe(TypeScoreChanged, func(e Event) {
		called = true
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}
	if called {
		t.Error("Handler should not be called until an event is published")
	}
}

func TestBus_Publish(t *testing.T) {
	bus := NewBus()

	var received Event
	bus.Subscribe(TypeScoreChanged, func(e Event) {
		received = e
	})

	bus.Publish(NewScoreChangedEvent("b1", "home", 2, 2, 0))

	if received == nil {
		t.Fatal("Handler should have received the event")
	}
	changed, ok := received.(ScoreChangedEvent)
	if !ok {
		t.Fatalf("Expected ScoreChangedEvent, got %T", received)
	}
	if changed.Team != "home" || changed.Increment != 2 || changed.Home != 2 || changed.Away != 0 {
		t.Errorf("unexpected event payload: %+v", changed)
	}
	if changed.Timestamp().IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestBus_PublishNoMatchingHandlers(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(TypeScoreReset, func(e Event) {
		t.Error("Handler should not be called for non-matching event type")
	})

	bus.Publish(NewScoreChangedEvent("b1", "away", 1, 0, 1))
}

func TestBus_OrderSpecificThenWildcard(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.SubscribeAll(func(e Event) { order = append(order, "wildcard") })
	bus.Subscribe(TypeScoreReset, func(e Event) { order = append(order, "first") })
	bus.Subscribe(TypeScoreReset, func(e Event) { order = append(order, "second") })

	bus.Publish(NewScoreResetEvent("b1", 3, 4))

	want := []string{"first", "second", "wildcard"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	id := bus.Subscribe(TypeScoreChanged, func(e Event) { calls++ })

	if !bus.Unsubscribe(id) {
		t.Fatal("Unsubscribe should report the subscription was removed")
	}
	if bus.Unsubscribe(id) {
		t.Error("second Unsubscribe should report false")
	}

	bus.Publish(NewScoreChangedEvent("b1", "home", 1, 1, 0))
	if calls != 0 {
		t.Errorf("unsubscribed handler was called %d times", calls)
	}
}

func TestBus_PanicRecovery(t *testing.T) {
	bus := NewBus()

	var panicType string
	bus.OnPanic(func(eventType string, recovered any, stack []byte) {
		panicType = eventType
		if len(stack) == 0 {
			t.Error("expected a stack trace")
		}
	})

	secondCalled := false
	bus.Subscribe(TypeScoreReset, func(e Event) { panic("boom") })
	bus.Subscribe(TypeScoreReset, func(e Event) { secondCalled = true })

	bus.Publish(NewScoreResetEvent("b1", 0, 0))

	if !secondCalled {
		t.Error("handler after a panicking handler should still run")
	}
	if panicType != TypeScoreReset {
		t.Errorf("OnPanic eventType = %q, want %q", panicType, TypeScoreReset)
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe(TypeScoreChanged, func(e Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(NewScoreChangedEvent("b1", "home", 1, 1, 0))
		}()
	}
	wg.Wait()

	if count != 50 {
		t.Errorf("count = %d, want 50", count)
	}
}
