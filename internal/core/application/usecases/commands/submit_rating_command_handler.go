package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrderIsNotRatable is returned when rating an order that has not been
// delivered. Only delivered orders can be rated.
var ErrOrderIsNotRatable = errors.New("only delivered orders can be rated")

// SubmitRatingCommandHandler validates a rating against its order and
// persists it. Enforces the preconditions the aggregate cannot see on its
// own: the order must be delivered, the author must be the ordering customer,
// and a driver rating needs a driver to have delivered the order.
//
// The repository's uniqueness constraint on (order, target) turns a repeat
// submission into a DuplicateError.
type SubmitRatingCommandHandler struct {
	uowFactory RatingUoWFactory
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(uowFactory RatingUoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating submission.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ratedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !ratedOrder.CanBeRated() {
		return ErrOrderIsNotRatable
	}

	if !cmd.AuthorID().IsEqual(ratedOrder.CustomerID()) {
		return errs.NewUnauthorizedErrorWithCause("authorId",
			errors.New("only the ordering customer may rate the order"))
	}

	targetID, err := resolveRatingTarget(cmd.Target(), ratedOrder.RestaurantID(), ratedOrder.Driver())
	if err != nil {
		return err
	}

	newRating, err := rating.NewRating(
		cmd.RatingID(),
		cmd.OrderID(),
		cmd.Target(),
		targetID,
		cmd.AuthorID(),
		cmd.Stars(),
		cmd.Comment(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.RatingRepository().Add(ctx, newRating); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func resolveRatingTarget(target rating.Target, restaurantID kernel.UUID, driverID *kernel.UUID) (kernel.UUID, error) {
	if target == rating.TargetRestaurant {
		return restaurantID, nil
	}

	if driverID == nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("target",
			errors.New("order has no driver to rate"))
	}

	return *driverID, nil
}
