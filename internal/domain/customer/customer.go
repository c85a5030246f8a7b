package customer

import (
	"strings"

	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
)

// Customer is an entity identified by a caller-assigned id. A customer
// starts inactive with zero reward points; an address must be set before
// activation.
type Customer struct {
	id           string
	name         string
	address      Address
	active       bool
	rewardPoints int
}

// New validates id and name and returns an inactive customer with no
// address and zero reward points.
func New(id, name string) (*Customer, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return nil, aggregates.NewValidation("customer.id", "must not be empty")
	}
	if name == "" {
		return nil, aggregates.NewValidation("customer.name", "must not be empty")
	}
	return &Customer{id: id, name: name}, nil
}

// Restore rehydrates a customer from stored state without re-running
// business validation. Repositories are the only callers.
func Restore(id, name string, address Address, active bool, rewardPoints int) *Customer {
	return &Customer{
		id:           id,
		name:         name,
		address:      address,
		active:       active,
		rewardPoints: rewardPoints,
	}
}

func (c *Customer) ID() string        { return c.id }
func (c *Customer) Name() string      { return c.name }
func (c *Customer) Address() Address  { return c.address }
func (c *Customer) HasAddress() bool  { return !c.address.IsZero() }
func (c *Customer) Active() bool      { return c.active }
func (c *Customer) RewardPoints() int { return c.rewardPoints }

func (c *Customer) ChangeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return aggregates.NewValidation("customer.name", "must not be empty")
	}
	c.name = name
	return nil
}

// ChangeAddress copies the value object in. The zero address is rejected
// so HasAddress stays meaningful.
func (c *Customer) ChangeAddress(address Address) error {
	if address.IsZero() {
		return aggregates.NewValidation("customer.address", "must not be empty")
	}
	c.address = address
	return nil
}

// Activate requires an address to be present.
func (c *Customer) Activate() error {
	if !c.HasAddress() {
		return aggregates.NewInvalidState("Customer", "address is mandatory to activate a customer")
	}
	c.active = true
	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

// AddRewardPoints only ever increases the balance.
func (c *Customer) AddRewardPoints(points int) error {
	if points <= 0 {
		return aggregates.NewValidation("customer.rewardPoints", "points to add must be positive")
	}
	c.rewardPoints += points
	return nil
}
