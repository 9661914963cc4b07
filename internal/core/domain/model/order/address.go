package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress constructor.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is the structured delivery destination attached to delivery orders.
// Unit and instructions are optional free text; the remaining fields are
// required. Address is an immutable value object.
type Address struct {
	street       string
	unit         string
	city         string
	state        string
	postalCode   string
	instructions string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address.
// Street, city, state, and postal code are required; unit and instructions
// may be empty.
func NewAddress(street, unit, city, state, postalCode, instructions string) (Address, error) {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"street", street},
		{"city", city},
		{"state", state},
		{"postalCode", postalCode},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return Address{}, errs.NewValueIsRequiredErrorWithCause(
			"address",
			fmt.Errorf("missing fields: %v", missing),
		)
	}

	return Address{
		street:       street,
		unit:         unit,
		city:         city,
		state:        state,
		postalCode:   postalCode,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// Unit returns the apartment/suite line. May be empty.
func (a Address) Unit() string { return a.unit }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or region code.
func (a Address) State() string { return a.state }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Instructions returns free-text delivery instructions. May be empty.
func (a Address) Instructions() string { return a.instructions }

// Validate returns ErrAddressIsNotConstructed for a zero-value Address.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
