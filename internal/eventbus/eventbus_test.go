package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventWeatherRequested, func(e DomainEvent) { got <- e })

	b.Publish(WeatherRequestedEvent{RequestID: 7, City: "Paris"})

	select {
	case e := <-got:
		ev, ok := e.(WeatherRequestedEvent)
		require.True(t, ok, "unexpected event type %T", e)
		assert.Equal(t, uint64(7), ev.RequestID)
		assert.Equal(t, "Paris", ev.City)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscriberOnlyReceivesItsType(t *testing.T) {
	b := New()
	defer b.Close()

	var requested atomic.Int32
	done := make(chan struct{}, 1)
	b.Subscribe(EventWeatherRequested, func(DomainEvent) { requested.Add(1) })
	b.Subscribe(EventWeatherCompleted, func(DomainEvent) { done <- struct{}{} })

	b.Publish(WeatherCompletedEvent{RequestID: 1})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("completion event was not delivered")
	}
	assert.Equal(t, int32(0), requested.Load())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventError, func(DomainEvent) { calls.Add(1) })
	unsubscribe()
	unsubscribe()

	sentinel := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { sentinel <- struct{}{} })
	b.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-sentinel:
	case <-time.After(2 * time.Second):
		t.Fatal("remaining subscriber was not called")
	}
	// Give a stray handler goroutine a chance to run
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) { panic("handler failure") })
	got := make(chan struct{}, 2)
	b.Subscribe(EventError, func(DomainEvent) { got <- struct{}{} })

	b.Publish(ErrorEvent{Message: "first"})
	b.Publish(ErrorEvent{Message: "second"})

	for i := 0; i < 2; i++ {
		select {
		case <-got:
		case <-time.After(2 * time.Second):
			t.Fatalf("event %d was not delivered", i)
		}
	}
}
