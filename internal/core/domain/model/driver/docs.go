// Package driver contains the Driver aggregate: the delivery drivers who claim
// orders from the pool, fulfill them, and occasionally hand them back.
//
// A driver has an availability toggle (on/off shift), a pointer to at most one
// active order, and a counter of rejected assignments. The dispatch service
// prefers free drivers with the fewest rejections.
package driver
