package order

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("LineItem must be created via NewLineItem")

// LineItem is a single ordered menu item with its quantity, unit price,
// selected customizations, and optional free-text note. The name and price
// are snapshots taken at placement time so later menu edits do not alter
// order history.
type LineItem struct {
	menuItemID     kernel.UUID
	name           string
	quantity       int
	unitPrice      kernel.Money
	customizations []string
	note           string

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
// Quantity must be positive; name must be non-empty; the menu item reference
// and unit price must be constructed values.
func NewLineItem(
	menuItemID kernel.UUID,
	name string,
	quantity int,
	unitPrice kernel.Money,
	customizations []string,
	note string,
) (LineItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return LineItem{}, err
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if err := unitPrice.Validate(); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		menuItemID:     menuItemID,
		name:           name,
		quantity:       quantity,
		unitPrice:      unitPrice,
		customizations: append([]string(nil), customizations...),
		note:           note,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// MenuItemID returns the referenced menu item's identifier.
func (li LineItem) MenuItemID() kernel.UUID { return li.menuItemID }

// Name returns the menu item name snapshot.
func (li LineItem) Name() string { return li.name }

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int { return li.quantity }

// UnitPrice returns the per-unit price snapshot.
func (li LineItem) UnitPrice() kernel.Money { return li.unitPrice }

// Customizations returns a copy of the selected customizations.
func (li LineItem) Customizations() []string {
	return append([]string(nil), li.customizations...)
}

// Note returns the optional free-text note. May be empty.
func (li LineItem) Note() string { return li.note }

// Total returns unit price times quantity.
func (li LineItem) Total() kernel.Money {
	return li.unitPrice.Mul(li.quantity)
}

// Validate returns ErrLineItemIsNotConstructed for a zero-value LineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}
