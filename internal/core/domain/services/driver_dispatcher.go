package services

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when no suitable driver is available for
// order dispatch. This occurs when either no drivers are provided or none of
// the provided drivers is on shift and free.
var ErrDriverNotFound = errors.New("driver not found")

// DriverDispatcher is a domain service that matches a pending order with the
// best available driver and executes the assignment on both aggregates.
//
// Business rules:
//   - The order must be pending and without a driver
//   - Only on-shift drivers without an active order are considered
//   - Among free drivers, the one with the fewest rejected assignments wins;
//     ties go to the least recently assigned driver (never-assigned first)
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch finds the best free driver for the order and assigns the order to
// that driver. Both the order and the chosen driver are mutated, so the
// caller must persist both.
//
// Returns ErrDriverNotFound when no free driver exists; the order is left
// unchanged in that case.
func (d DriverDispatcher) Dispatch(ord *order.Order, drivers []*driver.Driver, now time.Time) (*driver.Driver, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestDriver(drivers)
	if err != nil {
		return nil, err
	}

	if err = ord.AssignDriver(best.ID(), best.Name(), now); err != nil {
		return nil, err
	}

	if err = best.AssignOrder(ord.ID(), now); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestDriver evaluates the candidates and picks the free driver with the
// fewest rejected assignments, breaking ties in favor of the driver who was
// assigned least recently.
func (d DriverDispatcher) findBestDriver(drivers []*driver.Driver) (*driver.Driver, error) {
	var best *driver.Driver

	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsFree() {
			continue
		}

		if best == nil || beats(candidate, best) {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrDriverNotFound
	}

	return best, nil
}

// beats reports whether the candidate is a better pick than the current best:
// fewer rejections first, then the older (or absent) last assignment.
func beats(candidate, best *driver.Driver) bool {
	if candidate.RejectedOrders() != best.RejectedOrders() {
		return candidate.RejectedOrders() < best.RejectedOrders()
	}

	candidateAt := candidate.LastAssignedAt()
	bestAt := best.LastAssignedAt()
	switch {
	case candidateAt == nil:
		return bestAt != nil
	case bestAt == nil:
		return false
	default:
		return candidateAt.Before(*bestAt)
	}
}
