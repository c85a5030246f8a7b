package customer

import (
	"fmt"
	"strings"

	"github.com/yungbote/orderdesk-backend/internal/domain/aggregates"
)

// Address is an immutable value object. Customers hold it by value; two
// addresses are equal when every field matches.
type Address struct {
	street string
	number int
	zip    string
	city   string
}

func NewAddress(street string, number int, zip, city string) (Address, error) {
	street = strings.TrimSpace(street)
	zip = strings.TrimSpace(zip)
	city = strings.TrimSpace(city)
	if street == "" {
		return Address{}, aggregates.NewValidation("address.street", "must not be empty")
	}
	if number <= 0 {
		return Address{}, aggregates.NewValidation("address.number", "must be positive")
	}
	if zip == "" {
		return Address{}, aggregates.NewValidation("address.zip", "must not be empty")
	}
	if city == "" {
		return Address{}, aggregates.NewValidation("address.city", "must not be empty")
	}
	return Address{street: street, number: number, zip: zip, city: city}, nil
}

// RestoreAddress rehydrates the value object from stored columns without
// re-running validation. Repositories are the only callers; the zero row
// maps back to the absent address.
func RestoreAddress(street string, number int, zip, city string) Address {
	return Address{street: street, number: number, zip: zip, city: city}
}

func (a Address) Street() string { return a.street }
func (a Address) Number() int    { return a.number }
func (a Address) Zip() string    { return a.zip }
func (a Address) City() string   { return a.city }

// Equal compares field by field.
func (a Address) Equal(other Address) bool { return a == other }

// IsZero reports the absent-address state.
func (a Address) IsZero() bool { return a == Address{} }

func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.street, a.number, a.zip, a.city)
}
