package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the correct fulfillment
// workflow. It is the single canonical enumeration; the legacy client's
// dual-field string scheme is translated at the persistence boundary (see
// StatusFromLegacy).
//
// State transitions:
//
//	Pending ──> AssignedDriver ──> DriverAccepted ──> PickedUp ──> Delivered
//	   ^              │
//	   └──────────────┘
//	      (driver rejects; order returns to the pool)
//
//	any non-terminal ──> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions are permitted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after placement. The order has no driver
	// and is visible in the unassigned pool.
	Pending

	// AssignedDriver indicates a driver has been attached to the order,
	// either by claiming it or by the auto-dispatch job. The driver has not
	// yet confirmed.
	AssignedDriver

	// DriverAccepted indicates the assigned driver confirmed the order.
	DriverAccepted

	// PickedUp indicates the driver collected the order from the restaurant
	// and is en route to the customer.
	PickedUp

	// Delivered indicates the order reached the customer. Terminal; the order
	// becomes eligible for rating.
	Delivered

	// Cancelled indicates the order was cancelled by the restaurant or an
	// admin. Terminal.
	Cancelled
)

// Lifecycle event names used in transition error messages.
const (
	eventAssignDriver = "AssignDriver"
	eventAccept       = "Accept"
	eventPickUp       = "PickUp"
	eventDeliver      = "Deliver"
	eventReject       = "Reject"
	eventCancel       = "Cancel"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		AssignedDriver: "AssignedDriver",
		DriverAccepted: "DriverAccepted",
		PickedUp:       "PickedUp",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		AssignedDriver: "AssignedDriver",
		DriverAccepted: "DriverAccepted",
		PickedUp:       "PickedUp",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks that the Status holds one of the defined lifecycle states.
// Used to vet values arriving from persistence or the API boundary.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment.
//
// Business rules:
//   - Pending orders must not have a driver (they are in the unassigned pool)
//   - AssignedDriver, DriverAccepted, PickedUp, and Delivered orders must have one
//   - Cancelled orders may or may not, depending on when cancellation happened
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if s == Cancelled {
		return nil
	}

	if hasDriver && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !hasDriver && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// AssignDriver transitions the status to AssignedDriver.
//
// Valid transitions:
//   - Pending -> AssignedDriver
//
// A claim on an order that already left the pool fails with an
// InvalidTransition error, which is how racing drivers lose politely.
func (s Status) AssignDriver() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), eventAssignDriver)
	}

	return AssignedDriver, nil
}

// Accept transitions the status to DriverAccepted.
//
// Valid transitions:
//   - AssignedDriver -> DriverAccepted
func (s Status) Accept() (Status, error) {
	if s != AssignedDriver {
		return 0, errs.NewInvalidTransitionError(s.String(), eventAccept)
	}

	return DriverAccepted, nil
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - DriverAccepted -> PickedUp
func (s Status) PickUp() (Status, error) {
	if s != DriverAccepted {
		return 0, errs.NewInvalidTransitionError(s.String(), eventPickUp)
	}

	return PickedUp, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - PickedUp -> Delivered
//
// Delivered is terminal; the order becomes eligible for rating.
func (s Status) Deliver() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewInvalidTransitionError(s.String(), eventDeliver)
	}

	return Delivered, nil
}

// Reject transitions the status back to Pending.
//
// Valid transitions:
//   - AssignedDriver -> Pending
//
// The order re-enters the unassigned pool; admin re-dispatch is not required.
func (s Status) Reject() (Status, error) {
	if s != AssignedDriver {
		return 0, errs.NewInvalidTransitionError(s.String(), eventReject)
	}

	return Pending, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - any non-terminal status -> Cancelled
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError(s.String(), eventCancel)
	}

	return Cancelled, nil
}
