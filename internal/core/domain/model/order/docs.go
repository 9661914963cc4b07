// Package order contains the Order aggregate and its lifecycle state machine.
//
// The Order aggregate is the core of the system: it owns the canonical status
// enumeration (Pending, AssignedDriver, DriverAccepted, PickedUp, Delivered,
// Cancelled), validates every transition against the acting user, and
// maintains the pricing invariant total == subtotal + deliveryFee + tip.
//
// The legacy client tracked status in two loosely coupled string fields with
// inconsistent vocabularies. That scheme is collapsed here into the single
// Status type; StatusFromLegacy translates historical records at the
// persistence boundary.
//
// Concurrency: the aggregate carries a version counter incremented on every
// accepted mutation. The persistence adapter performs a compare-and-set on it,
// so racing writers resolve to exactly one winner and a retryable conflict.
package order
