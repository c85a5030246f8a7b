package product

import (
	"strings"

	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
)

// Product is an entity identified by a caller-assigned id. Its price is
// the current catalog price; orders snapshot it at order time.
type Product struct {
	id    string
	name  string
	price float64
}

func New(id, name string, price float64) (*Product, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return nil, aggregates.NewValidation("product.id", "must not be empty")
	}
	if name == "" {
		return nil, aggregates.NewValidation("product.name", "must not be empty")
	}
	if price < 0 {
		return nil, aggregates.NewValidation("product.price", "must not be negative")
	}
	return &Product{id: id, name: name, price: price}, nil
}

// Restore rehydrates a product from stored state. Repositories are the
// only callers.
func Restore(id, name string, price float64) *Product {
	return &Product{id: id, name: name, price: price}
}

func (p *Product) ID() string     { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }

func (p *Product) ChangeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return aggregates.NewValidation("product.name", "must not be empty")
	}
	p.name = name
	return nil
}

func (p *Product) ChangePrice(price float64) error {
	if price < 0 {
		return aggregates.NewValidation("product.price", "must not be negative")
	}
	p.price = price
	return nil
}
