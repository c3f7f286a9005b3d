package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleansweep-backend/internal/events"
)

func TestBroker_PublishReachesAllSubscribers(t *testing.T) {
	b := events.NewBroker()
	defer b.Close()

	ch1, cancel1 := b.Subscribe(4)
	ch2, cancel2 := b.Subscribe(4)
	defer cancel1()
	defer cancel2()

	b.Publish(events.Event{Type: events.TypeCleanupSubmitted})

	for _, ch := range []<-chan events.Event{ch1, ch2} {
		select {
		case e := <-ch:
			assert.Equal(t, events.TypeCleanupSubmitted, e.Type)
			assert.False(t, e.Timestamp.IsZero())
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBroker_CancelStopsDelivery(t *testing.T) {
	b := events.NewBroker()
	defer b.Close()

	ch, cancel := b.Subscribe(4)
	require.Equal(t, 1, b.SubscriberCount())

	cancel()
	assert.Equal(t, 0, b.SubscriberCount())

	// Channel is closed after cancel.
	_, open := <-ch
	assert.False(t, open)

	// Cancel is idempotent.
	cancel()
}

func TestBroker_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	b := events.NewBroker()
	defer b.Close()

	ch, cancel := b.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		b.Publish(events.Event{Type: "first"})
		b.Publish(events.Event{Type: "second"}) // dropped, buffer full
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	e := <-ch
	assert.Equal(t, "first", e.Type)
	select {
	case e := <-ch:
		t.Fatalf("unexpected second event: %v", e)
	default:
	}
}

func TestBroker_CloseClosesSubscribers(t *testing.T) {
	b := events.NewBroker()
	ch, _ := b.Subscribe(1)

	b.Close()

	_, open := <-ch
	assert.False(t, open)

	// Subscribing after close yields a closed channel.
	ch2, cancel2 := b.Subscribe(1)
	cancel2()
	_, open = <-ch2
	assert.False(t, open)
}
