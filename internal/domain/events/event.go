package events

import (
	"time"
)

// Event is a named, timestamped fact raised by the domain. The payload is
// opaque to the dispatcher; handlers assert it to the shape they expect.
type Event interface {
	Name() string
	OccurredAt() time.Time
	Payload() any
}

// Handler consumes one event. Implementations are side-effecting only and
// must not assume any other handler ran before or after them.
type Handler interface {
	Handle(event Event) error
}

// BaseEvent carries the common event fields. Concrete events embed it and
// pass their payload through NewBase.
type BaseEvent struct {
	EventName string
	At        time.Time
	Data      any
}

// NewBase stamps an event with the current time.
func NewBase(name string, data any) BaseEvent {
	return BaseEvent{EventName: name, At: time.Now(), Data: data}
}

func (e BaseEvent) Name() string          { return e.EventName }
func (e BaseEvent) OccurredAt() time.Time { return e.At }
func (e BaseEvent) Payload() any          { return e.Data }
