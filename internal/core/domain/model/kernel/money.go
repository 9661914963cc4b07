package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when a Money instance was not created
// through one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or MoneyFromCents")

// Money is a value object representing a monetary amount in integer cents.
// Storing cents avoids the floating-point drift that plagued the legacy
// client, where totals were accumulated as doubles.
//
// Money is immutable: arithmetic returns new values. Amounts are never
// negative; order pricing has no concept of debt.
//
// Example:
//
//	subtotal, _ := kernel.NewMoney(3527) // $35.27
//	fee, _ := kernel.NewMoney(500)       // $5.00
//	total := subtotal.Add(fee)
//	fmt.Println(total) // 40.27
type Money struct {
	cents int64

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in cents.
// Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("cents", cents, 0, int64(1)<<62)
	}

	return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromCents reconstructs a Money value from persistence.
// It applies the same range validation as NewMoney.
func MoneyFromCents(cents int64) (Money, error) {
	return NewMoney(cents)
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents, guard: guard.NewConstructorGuard()}
}

// Mul returns the amount multiplied by a non-negative factor.
// Used for line-item totals (unit price times quantity).
func (m Money) Mul(factor int) Money {
	if factor < 0 {
		factor = 0
	}
	return Money{cents: m.cents * int64(factor), guard: guard.NewConstructorGuard()}
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount in decimal dollars, e.g. "35.27".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
