package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAddressIsRequiredForDelivery is returned when a delivery order is
	// created without a delivery address.
	ErrAddressIsRequiredForDelivery = errs.NewValueIsRequiredError("address is required for delivery orders")

	// ErrItemsAreRequired is returned when an order is created with no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrTotalMismatch is returned when restoring an order whose stored total
	// does not equal subtotal + delivery fee + tip.
	ErrTotalMismatch = errs.NewValueIsInvalidError("total must equal subtotal + deliveryFee + tip")
)

// Order is the aggregate root for a placed purchase, tracked from placement
// through fulfillment. It owns the canonical state machine, the actor guards
// on every transition, and the pricing invariant.
//
// Invariants:
//   - total == subtotal + deliveryFee + tip after every accepted mutation
//   - a driver is attached iff the status has left Pending (Cancelled excepted)
//   - transitions follow the Status state machine; a failed transition leaves
//     the aggregate untouched
//   - version increments on every accepted mutation; the persistence adapter
//     uses it as the optimistic-concurrency token
//
// Orders are never deleted; terminal orders are retained for history.
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	customerID   kernel.UUID

	// driverID is the assigned driver (nil while the order is in the pool)
	driverID *kernel.UUID
	// driverName is a display-name snapshot taken at assignment time
	driverName string

	items []LineItem

	subtotal    kernel.Money
	deliveryFee kernel.Money
	tip         kernel.Money
	total       kernel.Money

	deliveryOption DeliveryOption
	// address is the delivery destination; nil for pickup orders
	address       *Address
	paymentMethod string

	status Status

	// version is the optimistic-concurrency token, starting at 1
	version int64

	createdAt time.Time
	updatedAt time.Time

	// transition timestamps, nil until the corresponding event happens
	acceptedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status.
//
// The subtotal is computed from the line items; the total is derived as
// subtotal + deliveryFee + tip, establishing the pricing invariant at birth.
// Delivery orders require an address; pickup orders ignore it.
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	deliveryFee kernel.Money,
	tip kernel.Money,
	deliveryOption DeliveryOption,
	address *Address,
	paymentMethod string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setDeliveryOption(deliveryOption, address),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if err := errors.Join(deliveryFee.Validate(), tip.Validate()); err != nil {
		return nil, err
	}

	subtotal, _ := kernel.NewMoney(0)
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Total())
	}

	o.subtotal = subtotal
	o.deliveryFee = deliveryFee
	o.tip = tip
	o.total = subtotal.Add(deliveryFee).Add(tip)

	o.createdAt = now.UTC()
	o.updatedAt = o.createdAt

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID             kernel.UUID
	RestaurantID   kernel.UUID
	CustomerID     kernel.UUID
	DriverID       *kernel.UUID
	DriverName     string
	Items          []LineItem
	Subtotal       kernel.Money
	DeliveryFee    kernel.Money
	Tip            kernel.Money
	Total          kernel.Money
	DeliveryOption DeliveryOption
	Address        *Address
	PaymentMethod  string
	Status         Status
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AcceptedAt     *time.Time
	PickedUpAt     *time.Time
	DeliveredAt    *time.Time
}

// RestoreOrder reconstructs an Order aggregate from persistence.
// Unlike NewOrder it accepts any valid status, but it re-checks the pricing
// invariant, the status/driver consistency rule, and the version.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setRestaurantID(params.RestaurantID),
		o.setCustomerID(params.CustomerID),
		o.setItems(params.Items),
		o.setDeliveryOption(params.DeliveryOption, params.Address),
		o.setPaymentMethod(params.PaymentMethod),
	); err != nil {
		return nil, err
	}

	if err := params.Status.Validate(); err != nil {
		return nil, err
	}
	if err := params.Status.ValidateCanHaveDriver(params.DriverID != nil); err != nil {
		return nil, err
	}
	if params.DriverID != nil {
		if err := params.DriverID.Validate(); err != nil {
			return nil, err
		}
	}

	if err := errors.Join(
		params.Subtotal.Validate(),
		params.DeliveryFee.Validate(),
		params.Tip.Validate(),
		params.Total.Validate(),
	); err != nil {
		return nil, err
	}
	if !params.Total.IsEqual(params.Subtotal.Add(params.DeliveryFee).Add(params.Tip)) {
		return nil, ErrTotalMismatch
	}

	if params.Version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version")
	}

	o.driverID = params.DriverID
	o.driverName = params.DriverName
	o.subtotal = params.Subtotal
	o.deliveryFee = params.DeliveryFee
	o.tip = params.Tip
	o.total = params.Total
	o.status = params.Status
	o.version = params.Version
	o.createdAt = params.CreatedAt
	o.updatedAt = params.UpdatedAt
	o.acceptedAt = params.AcceptedAt
	o.pickedUpAt = params.PickedUpAt
	o.deliveredAt = params.DeliveredAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Driver returns the assigned driver's ID, or nil while the order is unassigned.
func (o *Order) Driver() *kernel.UUID { return o.driverID }

// DriverName returns the assigned driver's display-name snapshot.
func (o *Order) DriverName() string { return o.driverName }

// Items returns a copy of the ordered line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Subtotal returns the sum of line-item totals.
func (o *Order) Subtotal() kernel.Money { return o.subtotal }

// DeliveryFee returns the delivery fee.
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }

// Tip returns the tip.
func (o *Order) Tip() kernel.Money { return o.tip }

// Total returns subtotal + deliveryFee + tip.
func (o *Order) Total() kernel.Money { return o.total }

// DeliveryOption returns how the customer receives the order.
func (o *Order) DeliveryOption() DeliveryOption { return o.deliveryOption }

// Address returns the delivery destination, or nil for pickup orders.
func (o *Order) Address() *Address { return o.address }

// PaymentMethod returns the opaque payment method token.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Version returns the optimistic-concurrency token.
func (o *Order) Version() int64 { return o.version }

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last-mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// AcceptedAt returns when the driver accepted, or nil.
func (o *Order) AcceptedAt() *time.Time { return o.acceptedAt }

// PickedUpAt returns when the driver picked the order up, or nil.
func (o *Order) PickedUpAt() *time.Time { return o.pickedUpAt }

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// CanBeRated reports whether ratings may be attached to the order.
// Only delivered orders are rateable.
func (o *Order) CanBeRated() bool {
	return o.status == Delivered
}

// AssignDriver attaches a driver to a pending order (a "claim").
//
// Guards:
//   - the order must be Pending with no driver attached
//
// On success the status becomes AssignedDriver and the driver's ID and display
// name are recorded. A claim on an order that already has a driver fails with
// an InvalidTransition error and leaves the order unchanged.
func (o *Order) AssignDriver(driverID kernel.UUID, driverName string, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), eventAssignDriver,
			errors.New("order already has a driver"),
		)
	}

	newStatus, err := o.status.AssignDriver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.driverName = driverName
	o.touch(now)
	return nil
}

// Accept records the assigned driver's confirmation.
//
// Guards:
//   - actor must be the assigned driver
//   - the order must be in AssignedDriver status
//
// Stamps the accepted timestamp.
func (o *Order) Accept(actorID kernel.UUID, now time.Time) error {
	if err := o.validateActorIsDriver(actorID); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	t := now.UTC()
	o.acceptedAt = &t
	o.touch(now)
	return nil
}

// PickUp records that the driver collected the order from the restaurant.
//
// Guards:
//   - actor must be the assigned driver
//   - the order must be in DriverAccepted status
//
// Stamps the picked-up timestamp. The caller notifies the customer; delivery
// of that notification is best-effort and never blocks the transition.
func (o *Order) PickUp(actorID kernel.UUID, now time.Time) error {
	if err := o.validateActorIsDriver(actorID); err != nil {
		return err
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	t := now.UTC()
	o.pickedUpAt = &t
	o.touch(now)
	return nil
}

// Deliver records delivery to the customer.
//
// Guards:
//   - actor must be the assigned driver
//   - the order must be in PickedUp status
//
// Stamps the delivered timestamp. Delivered is terminal and makes the order
// eligible for rating. The caller clears the driver's active-order pointer.
func (o *Order) Deliver(actorID kernel.UUID, now time.Time) error {
	if err := o.validateActorIsDriver(actorID); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	t := now.UTC()
	o.deliveredAt = &t
	o.touch(now)
	return nil
}

// Reject returns an assigned order to the unassigned pool.
//
// Guards:
//   - actor must be the assigned driver
//   - the order must be in AssignedDriver status
//
// The driver is detached and the order becomes Pending again; the caller
// increments the driver's rejected-order counter.
func (o *Order) Reject(actorID kernel.UUID, now time.Time) error {
	if err := o.validateActorIsDriver(actorID); err != nil {
		return err
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = nil
	o.driverName = ""
	o.touch(now)
	return nil
}

// Cancel terminates a non-terminal order.
//
// Guards:
//   - actor must be an admin, or the restaurant that owns the order
//   - the order must not be in a terminal status
//
// Cancelled is terminal; no further transitions are permitted.
func (o *Order) Cancel(actorID kernel.UUID, role kernel.Role, now time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	switch role {
	case kernel.RoleAdmin:
		// admins may cancel any order
	case kernel.RoleRestaurant:
		if !actorID.IsEqual(o.restaurantID) {
			return errs.NewUnauthorizedErrorWithCause("actorId",
				errors.New("actor is not the restaurant that owns the order"))
		}
	default:
		return errs.NewUnauthorizedErrorWithCause("role",
			errors.New("only admins and the owning restaurant may cancel"))
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// validateActorIsDriver checks that the actor is the currently assigned driver.
func (o *Order) validateActorIsDriver(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if o.driverID == nil || !actorID.IsEqual(*o.driverID) {
		return errs.NewUnauthorizedErrorWithCause("actorId",
			errors.New("actor is not the assigned driver"))
	}
	return nil
}

// touch bumps the version and the last-updated timestamp.
// Called only after a transition has been accepted.
func (o *Order) touch(now time.Time) {
	o.version++
	o.updatedAt = now.UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setDeliveryOption(option DeliveryOption, address *Address) error {
	if err := option.Validate(); err != nil {
		return err
	}
	if option == OptionDelivery {
		if address == nil {
			return ErrAddressIsRequiredForDelivery
		}
		if err := address.Validate(); err != nil {
			return err
		}
	}
	o.deliveryOption = option
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}
