package event

import (
	"fmt"

	"github.com/google/uuid"
)

// Event is what every listener receives on dispatch.
type Event struct {
	Type  string
	Value any
}

// Listener wraps a callback. Two listeners are the same only if they are the
// same pointer, so keep the value returned by NewListener to unregister it.
type Listener struct {
	id uuid.UUID
	fn func(Event)
}

func NewListener(fn func(Event)) *Listener {
	return &Listener{
		id: uuid.New(),
		fn: fn,
	}
}

func (l *Listener) ID() uuid.UUID {
	if l == nil {
		return uuid.Nil
	}
	return l.id
}

func (l *Listener) callable() bool {
	return l != nil && l.fn != nil
}

func (l *Listener) call(evt Event) {
	if !l.callable() {
		panic(fmt.Errorf("%w: listener %s on %q", ErrNotCallable, l.ID(), evt.Type))
	}
	l.fn(evt)
}
