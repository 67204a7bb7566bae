package platform

import (
	"context"
	"sync"

	"github.com/tarantool/go-knobs/guid"
)

// Event identifies a no-payload notification.
type Event guid.GUID

// EventProfileValidated is published once persisted storage matches the active profile.
var EventProfileValidated = Event(guid.MustParse("7B3B4E1E-5E8C-4F5B-8C2D-4A6F0E9D1C11")) //nolint:gochecknoglobals

func (e Event) String() string {
	if e == EventProfileValidated {
		return "ProfileValidated"
	}

	return guid.GUID(e).String()
}

// Publisher signals events to whoever waits for them.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// Handler reacts to a published event.
type Handler func(ctx context.Context, e Event)

// Bus delivers events synchronously, in subscription order.
// Events published before a subscription are remembered and replayed on Subscribe.
type Bus struct {
	mu        sync.Mutex
	handlers  map[Event][]Handler
	published map[Event]int
}

var _ Publisher = &Bus{} //nolint:exhaustruct

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		mu:        sync.Mutex{},
		handlers:  make(map[Event][]Handler),
		published: make(map[Event]int),
	}
}

// Subscribe registers h for e. If e was already published, h runs right away.
func (b *Bus) Subscribe(ctx context.Context, e Event, h Handler) {
	b.mu.Lock()
	b.handlers[e] = append(b.handlers[e], h)
	seen := b.published[e] > 0
	b.mu.Unlock()

	if seen {
		h(ctx, e)
	}
}

// Publish implements Publisher.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.Lock()
	b.published[e]++
	handlers := append([]Handler(nil), b.handlers[e]...)
	b.mu.Unlock()

	for _, h := range handlers {
		h(ctx, e)
	}
}

// Published returns how many times e was published.
func (b *Bus) Published(e Event) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.published[e]
}
