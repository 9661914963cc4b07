package driver

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
	// ErrDriverIsBusy is returned when assigning an order to a driver that already has one.
	ErrDriverIsBusy = errors.New("driver already has an active order")
	// ErrDriverIsOffShift is returned when assigning an order to a driver that is not on shift.
	ErrDriverIsOffShift = errors.New("driver is not on shift")
	// ErrOrderIsNotActive is returned when completing or rejecting an order the driver does not hold.
	ErrOrderIsNotActive = errors.New("order is not the driver's active order")
)

// Driver represents a delivery driver in the marketplace.
// It is an aggregate root that tracks availability, the driver's current
// active order, and the running count of rejected assignments.
//
// Business rules:
//   - A driver holds at most one active order at a time
//   - Only drivers on shift with no active order are eligible for assignment
//   - Rejecting an assignment frees the driver and increments the rejection
//     counter; delivering frees the driver without penalty
type Driver struct {
	id   kernel.UUID
	name string

	// onShift is the availability toggle controlled by the driver
	onShift bool

	// activeOrderID is the order currently being fulfilled (nil if none)
	activeOrderID *kernel.UUID

	// rejectedOrders counts assignments the driver has rejected
	rejectedOrders int

	// lastAssignedAt is when the driver last received an assignment
	// (nil if never). The dispatcher uses it to break ties.
	lastAssignedAt *time.Time

	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver, off shift and with no active order.
func NewDriver(id kernel.UUID, name string) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
func RestoreDriver(
	id kernel.UUID,
	name string,
	onShift bool,
	activeOrderID *kernel.UUID,
	rejectedOrders int,
	lastAssignedAt *time.Time,
) (*Driver, error) {
	d, err := NewDriver(id, name)
	if err != nil {
		return nil, err
	}

	if activeOrderID != nil {
		if err = activeOrderID.Validate(); err != nil {
			return nil, err
		}
	}
	if rejectedOrders < 0 {
		return nil, errs.NewValueIsOutOfRangeError("rejectedOrders", rejectedOrders, 0, int(^uint(0)>>1))
	}

	d.onShift = onShift
	d.activeOrderID = activeOrderID
	d.rejectedOrders = rejectedOrders
	d.lastAssignedAt = lastAssignedAt

	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// IsOnShift reports whether the driver has toggled themselves available.
func (d *Driver) IsOnShift() bool { return d.onShift }

// ActiveOrder returns the order the driver is currently fulfilling, or nil.
func (d *Driver) ActiveOrder() *kernel.UUID { return d.activeOrderID }

// RejectedOrders returns how many assignments the driver has rejected.
func (d *Driver) RejectedOrders() int { return d.rejectedOrders }

// LastAssignedAt returns when the driver last received an assignment,
// or nil if they never have.
func (d *Driver) LastAssignedAt() *time.Time { return d.lastAssignedAt }

// IsFree reports whether the driver is eligible for a new assignment:
// on shift with no active order.
func (d *Driver) IsFree() bool {
	return d.onShift && d.activeOrderID == nil
}

// SetOnShift toggles the driver's availability.
// Going off shift does not drop an active order; the driver still has to
// finish or reject it.
func (d *Driver) SetOnShift(onShift bool) {
	d.onShift = onShift
}

// AssignOrder records the order the driver is now fulfilling and stamps the
// assignment time. The driver must be on shift and free.
func (d *Driver) AssignOrder(orderID kernel.UUID, now time.Time) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !d.onShift {
		return ErrDriverIsOffShift
	}
	if d.activeOrderID != nil {
		return ErrDriverIsBusy
	}

	d.activeOrderID = &orderID
	t := now.UTC()
	d.lastAssignedAt = &t
	return nil
}

// CompleteOrder clears the active-order pointer after delivery.
func (d *Driver) CompleteOrder(orderID kernel.UUID) error {
	if err := d.validateActiveOrder(orderID); err != nil {
		return err
	}

	d.activeOrderID = nil
	return nil
}

// RejectOrder clears the active-order pointer and increments the
// rejected-order counter. The rejected order returns to the unassigned pool.
func (d *Driver) RejectOrder(orderID kernel.UUID) error {
	if err := d.validateActiveOrder(orderID); err != nil {
		return err
	}

	d.activeOrderID = nil
	d.rejectedOrders++
	return nil
}

func (d *Driver) validateActiveOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if d.activeOrderID == nil || !orderID.IsEqual(*d.activeOrderID) {
		return ErrOrderIsNotActive
	}
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
