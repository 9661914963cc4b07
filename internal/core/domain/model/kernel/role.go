package kernel

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Role identifies which of the four marketplace surfaces an actor belongs to.
// Transition guards and chat messages carry the acting role alongside the
// actor's UUID.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the ordering customer.
	RoleCustomer

	// RoleRestaurant is the restaurant fulfilling the order.
	RoleRestaurant

	// RoleDriver is the delivery driver.
	RoleDriver

	// RoleAdmin is marketplace support/operations staff.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleCustomer:   "customer",
		RoleRestaurant: "restaurant",
		RoleDriver:     "driver",
		RoleAdmin:      "admin",
	}
}

// ParseRole converts a role token from the transport or storage boundary
// into a Role. Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return RoleCustomer, nil
	case "restaurant":
		return RoleRestaurant, nil
	case "driver":
		return RoleDriver, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// String returns the lower-case name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
