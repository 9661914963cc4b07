package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand represents a customer rating a delivered order's
// restaurant or driver. Star bounds are enforced by the Rating aggregate;
// the command carries the raw score through.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	ratingID kernel.UUID
	orderID  kernel.UUID
	target   rating.Target
	authorID kernel.UUID
	stars    int
	comment  string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to rate a delivered order.
func NewSubmitRatingCommand(
	ratingID kernel.UUID,
	orderID kernel.UUID,
	target rating.Target,
	authorID kernel.UUID,
	stars int,
	comment string,
) (SubmitRatingCommand, error) {
	cmd := SubmitRatingCommand{
		stars:   stars,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRatingID(ratingID),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setAuthorID(authorID),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// RatingID returns the client-generated identifier for the new rating.
func (c SubmitRatingCommand) RatingID() kernel.UUID { return c.ratingID }

// OrderID returns the rated order.
func (c SubmitRatingCommand) OrderID() kernel.UUID { return c.orderID }

// Target returns who the rating is about.
func (c SubmitRatingCommand) Target() rating.Target { return c.target }

// AuthorID returns the submitting customer.
func (c SubmitRatingCommand) AuthorID() kernel.UUID { return c.authorID }

// Stars returns the submitted score.
func (c SubmitRatingCommand) Stars() int { return c.stars }

// Comment returns the optional free-text comment.
func (c SubmitRatingCommand) Comment() string { return c.comment }

func (c *SubmitRatingCommand) setRatingID(ratingID kernel.UUID) error {
	if err := ratingID.Validate(); err != nil {
		return err
	}

	c.ratingID = ratingID
	return nil
}

func (c *SubmitRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitRatingCommand) setTarget(target rating.Target) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *SubmitRatingCommand) setAuthorID(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}

	c.authorID = authorID
	return nil
}
