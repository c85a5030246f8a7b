package order

import (
	"strings"

	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
)

// Order is the aggregate root owning its items. The item sequence keeps
// insertion order; the total is derived from the items on every call and
// never stored on the aggregate.
type Order struct {
	id         string
	customerID string
	items      []Item
}

// New builds an order. An order without at least one item is invalid
// aggregate state, rejected before anything is persisted.
func New(id, customerID string, items []Item) (*Order, error) {
	id = strings.TrimSpace(id)
	customerID = strings.TrimSpace(customerID)
	if id == "" {
		return nil, aggregates.NewValidation("order.id", "must not be empty")
	}
	if customerID == "" {
		return nil, aggregates.NewValidation("order.customerId", "must not be empty")
	}
	if len(items) == 0 {
		return nil, aggregates.NewInvalidState("Order", "must contain at least one item")
	}
	own := make([]Item, len(items))
	copy(own, items)
	return &Order{id: id, customerID: customerID, items: own}, nil
}

// Restore rehydrates an order from stored rows. The non-empty invariant
// still holds; an order row without items is corrupt storage.
func Restore(id, customerID string, items []Item) (*Order, error) {
	return New(id, customerID, items)
}

func (o *Order) ID() string         { return o.id }
func (o *Order) CustomerID() string { return o.customerID }

// Items returns a copy; the aggregate's own slice is never aliased out.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// AddItem appends to the item sequence. The non-empty invariant is
// already satisfied, so this cannot fail.
func (o *Order) AddItem(item Item) {
	o.items = append(o.items, item)
}

// Total recomputes the sum of the line totals on demand.
func (o *Order) Total() float64 {
	var total float64
	for _, it := range o.items {
		total += it.Total()
	}
	return total
}
