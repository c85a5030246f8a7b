package product

import (
	"github.com/yungbote/orderdesk-backend/internal/domain/events"
)

const EventCreated = "ProductCreated"

// CreatedPayload is the data carried by a ProductCreated event.
type CreatedPayload struct {
	ProductID string
	Name      string
	Price     float64
}

// CreatedEvent is raised after a product is first persisted.
type CreatedEvent struct {
	events.BaseEvent
}

func NewCreatedEvent(p *Product) CreatedEvent {
	return CreatedEvent{
		BaseEvent: events.NewBase(EventCreated, CreatedPayload{
			ProductID: p.ID(),
			Name:      p.Name(),
			Price:     p.Price(),
		}),
	}
}
