package event

import (
	"testing"
)

func TestSubscribeAndPublish(t *testing.T) {
	bus := NewBus()
	var received any
	bus.Subscribe("tick", func(payload any) {
		received = payload
	})

	bus.Publish("tick", 42)

	if received != 42 {
		t.Errorf("handler received %v, want %v", received, 42)
	}
}

func TestPublishWithoutSubscribersDoesNotPanic(t *testing.T) {
	bus := NewBus()
	bus.Publish("nobody", "data")
}

func TestDispatchOrderIsSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		bus.Subscribe("seq", func(any) {
			order = append(order, i)
		})
	}

	bus.Publish("seq", nil)

	if len(order) != 5 {
		t.Fatalf("handlers called %d times, want 5", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestPanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()
	called := false
	bus.Subscribe("boom", func(any) {
		panic("handler failure")
	})
	bus.Subscribe("boom", func(any) {
		called = true
	})

	bus.Publish("boom", nil)

	if !called {
		t.Fatal("second handler was not called after first panicked")
	}
}

func TestNilHandlerIgnored(t *testing.T) {
	bus := NewBus()
	bus.Subscribe("noop", nil)
	bus.Publish("noop", nil)
}
