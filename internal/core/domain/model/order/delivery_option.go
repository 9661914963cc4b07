package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// DeliveryOption selects how the customer receives the order.
type DeliveryOption int

const (
	// DeliveryOptionUnknown represents an invalid or undefined option.
	DeliveryOptionUnknown DeliveryOption = iota

	// OptionDelivery means a driver brings the order to the delivery address.
	OptionDelivery

	// OptionPickup means the customer collects the order at the restaurant.
	OptionPickup
)

// ParseDeliveryOption converts a transport/storage token into a DeliveryOption.
func ParseDeliveryOption(s string) (DeliveryOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "delivery":
		return OptionDelivery, nil
	case "pickup":
		return OptionPickup, nil
	default:
		return DeliveryOptionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"deliveryOption",
			fmt.Errorf("%q is not a valid delivery option", s),
		)
	}
}

// String returns the lower-case token for the option.
func (d DeliveryOption) String() string {
	switch d {
	case OptionDelivery:
		return "delivery"
	case OptionPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Validate rejects DeliveryOptionUnknown and out-of-range values.
func (d DeliveryOption) Validate() error {
	if d != OptionDelivery && d != OptionPickup {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryOption",
			fmt.Errorf("%d is not a valid delivery option", d),
		)
	}
	return nil
}
