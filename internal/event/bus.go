// Package event
package event

import (
	"sort"
	"sync"

	"pulse/internal/logger"
)

// Emitter is the capability set shared by Bus and everything built on it.
type Emitter interface {
	Register(eventType string, l *Listener) bool
	Unregister(eventType string, l *Listener) bool
	Dispatch(eventType string, value any) bool
	Teardown()
}

var _ Emitter = (*Bus)(nil)

type Bus struct {
	mu        sync.RWMutex
	callbacks map[string][]*Listener

	strict bool
	log    logger.Logger
}

func New(opts ...Option) *Bus {
	b := &Bus{
		callbacks: make(map[string][]*Listener),
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register appends l to the listeners of eventType. The same listener may be
// registered more than once.
//
// By default nothing is refused: the event type is always a string, so the
// lenient check (bad type and bad listener together) can never trip. An empty
// type is a valid key and a non-callable listener is stored as is.
// WithStrictRegister refuses an empty type or a non-callable listener.
func (b *Bus) Register(eventType string, l *Listener) bool {
	if b.strict && (eventType == "" || !l.callable()) {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.callbacks[eventType] = append(b.callbacks[eventType], l)

	b.log.Debug("event: listener registered", "type", eventType, "listener", l.ID())
	return true
}

// Unregister removes the most recently added occurrence of l.
func (b *Bus) Unregister(eventType string, l *Listener) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners, ok := b.callbacks[eventType]
	if !ok {
		return false
	}

	for i := len(listeners) - 1; i >= 0; i-- {
		if listeners[i] != l {
			continue
		}

		// Always a fresh slice: Dispatch may be iterating the old one.
		next := make([]*Listener, 0, len(listeners)-1)
		next = append(next, listeners[:i]...)
		next = append(next, listeners[i+1:]...)
		b.callbacks[eventType] = next

		b.log.Debug("event: listener unregistered", "type", eventType, "listener", l.ID())
		return true
	}

	return false
}

// Dispatch calls every listener of eventType in registration order. It reports
// false only when nothing was ever registered for eventType. A panicking
// listener aborts the dispatch and the panic reaches the caller.
func (b *Bus) Dispatch(eventType string, value any) bool {
	b.mu.RLock()
	listeners, ok := b.callbacks[eventType]
	b.mu.RUnlock()

	if !ok {
		return false
	}

	evt := Event{Type: eventType, Value: value}
	for _, l := range listeners {
		l.call(evt)
	}

	return true
}

func (b *Bus) Teardown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.callbacks = make(map[string][]*Listener)
}

func (b *Bus) ListenerCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.callbacks[eventType])
}

// EventTypes returns the known event types in sorted order, including types
// whose listeners have all been unregistered.
func (b *Bus) EventTypes() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	types := make([]string, 0, len(b.callbacks))
	for t := range b.callbacks {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
