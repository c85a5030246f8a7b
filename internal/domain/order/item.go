package order

import (
	"strings"

	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
)

// Item is one order line. Name and price are snapshots of the product at
// order time; later catalog changes never touch a placed order.
type Item struct {
	id        string
	productID string
	name      string
	price     float64
	quantity  int
}

func NewItem(id, productID, name string, price float64, quantity int) (Item, error) {
	id = strings.TrimSpace(id)
	productID = strings.TrimSpace(productID)
	name = strings.TrimSpace(name)
	if id == "" {
		return Item{}, aggregates.NewValidation("item.id", "must not be empty")
	}
	if productID == "" {
		return Item{}, aggregates.NewValidation("item.productId", "must not be empty")
	}
	if name == "" {
		return Item{}, aggregates.NewValidation("item.name", "must not be empty")
	}
	if price < 0 {
		return Item{}, aggregates.NewValidation("item.price", "must not be negative")
	}
	if quantity <= 0 {
		return Item{}, aggregates.NewValidation("item.quantity", "must be greater than zero")
	}
	return Item{id: id, productID: productID, name: name, price: price, quantity: quantity}, nil
}

func (i Item) ID() string        { return i.id }
func (i Item) ProductID() string { return i.productID }
func (i Item) Name() string      { return i.name }
func (i Item) Price() float64    { return i.price }
func (i Item) Quantity() int     { return i.quantity }

// Total is the line total, price times quantity.
func (i Item) Total() float64 {
	return i.price * float64(i.quantity)
}
