package chat

import (
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Channel distinguishes the two per-order conversations.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	ChannelUnknown Channel = iota

	// ChannelCustomerRestaurant is the customer talking to the restaurant.
	ChannelCustomerRestaurant

	// ChannelCustomerDriver is the customer talking to the driver.
	ChannelCustomerDriver
)

// ParseChannel converts a transport token into a Channel.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer-restaurant":
		return ChannelCustomerRestaurant, nil
	case "customer-driver":
		return ChannelCustomerDriver, nil
	default:
		return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause(
			"channel",
			fmt.Errorf("%q is not a valid chat channel", s),
		)
	}
}

// String returns the lower-case token for the channel.
func (c Channel) String() string {
	switch c {
	case ChannelCustomerRestaurant:
		return "customer-restaurant"
	case ChannelCustomerDriver:
		return "customer-driver"
	default:
		return "unknown"
	}
}

// Validate rejects ChannelUnknown and out-of-range values.
func (c Channel) Validate() error {
	if c != ChannelCustomerRestaurant && c != ChannelCustomerDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"channel",
			fmt.Errorf("%d is not a valid chat channel", c),
		)
	}
	return nil
}

// ThreadID identifies a conversation. Derivation is pure and deterministic:
// the same order and channel (or the same support user) always yield the same
// thread, so no thread registry is needed.
type ThreadID string

// ThreadForOrder derives the thread id for a per-order conversation.
func ThreadForOrder(orderID kernel.UUID, channel Channel) (ThreadID, error) {
	if err := orderID.Validate(); err != nil {
		return "", err
	}
	if err := channel.Validate(); err != nil {
		return "", err
	}

	return ThreadID(fmt.Sprintf("order:%s:%s", orderID, channel)), nil
}

// ThreadForSupport derives the thread id for a user's conversation with
// marketplace support.
func ThreadForSupport(userID kernel.UUID) (ThreadID, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	return ThreadID(fmt.Sprintf("support:%s", userID)), nil
}

// String returns the thread id as a plain string.
func (t ThreadID) String() string {
	return string(t)
}

// Validate rejects empty thread ids.
func (t ThreadID) Validate() error {
	if t == "" {
		return errs.NewValueIsRequiredError("threadId")
	}
	return nil
}
