package customer

import (
	"github.com/yungbote/orderdesk-backend/internal/domain/events"
)

const (
	EventCreated        = "CustomerCreated"
	EventAddressChanged = "CustomerAddressChanged"
)

// CreatedPayload is the data carried by a CustomerCreated event.
type CreatedPayload struct {
	CustomerID string
	Name       string
}

// CreatedEvent is raised after a customer is first persisted.
type CreatedEvent struct {
	events.BaseEvent
}

func NewCreatedEvent(c *Customer) CreatedEvent {
	return CreatedEvent{
		BaseEvent: events.NewBase(EventCreated, CreatedPayload{
			CustomerID: c.ID(),
			Name:       c.Name(),
		}),
	}
}

// AddressChangedPayload is the data carried by a CustomerAddressChanged
// event.
type AddressChangedPayload struct {
	CustomerID string
	Name       string
	Address    Address
}

// AddressChangedEvent is raised after the new address is persisted.
type AddressChangedEvent struct {
	events.BaseEvent
}

func NewAddressChangedEvent(c *Customer) AddressChangedEvent {
	return AddressChangedEvent{
		BaseEvent: events.NewBase(EventAddressChanged, AddressChangedPayload{
			CustomerID: c.ID(),
			Name:       c.Name(),
			Address:    c.Address(),
		}),
	}
}
