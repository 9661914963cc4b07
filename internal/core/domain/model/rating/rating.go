// Package rating contains the Rating aggregate: a 1-5 star review a customer
// attaches to a delivered order, targeting either the restaurant or the
// driver. Ratings are immutable once submitted and unique per (order, target).
package rating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	minStars = 1
	maxStars = 5
)

// ErrRatingIsNotConstructed is returned when using an improperly initialized Rating.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating")

// Target identifies who a rating is about.
type Target int

const (
	// TargetUnknown represents an invalid or undefined target.
	TargetUnknown Target = iota

	// TargetRestaurant rates the restaurant that prepared the order.
	TargetRestaurant

	// TargetDriver rates the driver that delivered the order.
	TargetDriver
)

// ParseTarget converts a transport/storage token into a Target.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "restaurant":
		return TargetRestaurant, nil
	case "driver":
		return TargetDriver, nil
	default:
		return TargetUnknown, errs.NewValueIsInvalidErrorWithCause(
			"target",
			fmt.Errorf("%q is not a valid rating target", s),
		)
	}
}

// String returns the lower-case token for the target.
func (t Target) String() string {
	switch t {
	case TargetRestaurant:
		return "restaurant"
	case TargetDriver:
		return "driver"
	default:
		return "unknown"
	}
}

// Validate rejects TargetUnknown and out-of-range values.
func (t Target) Validate() error {
	if t != TargetRestaurant && t != TargetDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"target",
			fmt.Errorf("%d is not a valid rating target", t),
		)
	}
	return nil
}

// Rating is an immutable 1-5 star review of a delivered order's restaurant
// or driver. At most one rating exists per (order, target); the repository
// enforces the uniqueness, the submit command enforces the delivered
// precondition.
type Rating struct {
	id       kernel.UUID
	orderID  kernel.UUID
	target   Target
	targetID kernel.UUID
	authorID kernel.UUID
	stars    int
	comment  string

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewRating creates a validated Rating. Stars must be between 1 and 5;
// comment may be empty.
func NewRating(
	id kernel.UUID,
	orderID kernel.UUID,
	target Target,
	targetID kernel.UUID,
	authorID kernel.UUID,
	stars int,
	comment string,
	now time.Time,
) (*Rating, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		target.Validate(),
		targetID.Validate(),
		authorID.Validate(),
	); err != nil {
		return nil, err
	}

	if stars < minStars || stars > maxStars {
		return nil, errs.NewValueIsOutOfRangeError("stars", stars, minStars, maxStars)
	}

	return &Rating{
		id:        id,
		orderID:   orderID,
		target:    target,
		targetID:  targetID,
		authorID:  authorID,
		stars:     stars,
		comment:   comment,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreRating reconstructs a Rating from persistence.
func RestoreRating(
	id kernel.UUID,
	orderID kernel.UUID,
	target Target,
	targetID kernel.UUID,
	authorID kernel.UUID,
	stars int,
	comment string,
	createdAt time.Time,
) (*Rating, error) {
	return NewRating(id, orderID, target, targetID, authorID, stars, comment, createdAt)
}

// Validate ensures the Rating instance was properly constructed.
func (r *Rating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID { return r.id }

// OrderID returns the rated order's identifier.
func (r *Rating) OrderID() kernel.UUID { return r.orderID }

// Target returns who the rating is about.
func (r *Rating) Target() Target { return r.target }

// TargetID returns the rated restaurant's or driver's identifier.
func (r *Rating) TargetID() kernel.UUID { return r.targetID }

// AuthorID returns the submitting customer's identifier.
func (r *Rating) AuthorID() kernel.UUID { return r.authorID }

// Stars returns the 1-5 star score.
func (r *Rating) Stars() int { return r.stars }

// Comment returns the optional free-text comment. May be empty.
func (r *Rating) Comment() string { return r.comment }

// CreatedAt returns the submission timestamp.
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
