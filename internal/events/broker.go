package events

import (
	"sync"
	"time"
)

// Event is a dashboard notification about activity elsewhere in the system.
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	TypeCleanupSubmitted = "cleanup_submitted"
	TypeChallengeCreated = "challenge_created"
)

// Publisher is the producer side of the broker.
type Publisher interface {
	Publish(e Event)
}

// Broker fans events out to subscribers. Subscriptions are cancellable
// streams; callers must invoke the returned cancel func on teardown so
// handlers are not leaked.
type Broker struct {
	mu     sync.Mutex
	subs   map[int64]chan Event
	nextID int64
	closed bool
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[int64]chan Event)}
}

// Subscribe registers a new subscriber and returns its event channel along
// with a cancel func. The channel is closed on cancel or broker shutdown.
func (b *Broker) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 16
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber. Slow subscribers with a
// full buffer miss the event rather than blocking the publisher.
func (b *Broker) Publish(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Close shuts the broker down and closes all subscriber channels.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// SubscriberCount reports the number of active subscriptions.
func (b *Broker) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
