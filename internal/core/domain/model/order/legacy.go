package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// StatusFromLegacy translates the legacy dual-field status representation into
// the canonical Status enumeration. Historical records carry a coarse "status"
// field plus a fine-grained "order_status" field, and different client
// revisions disagreed on both field names and vocabulary ("on_the_way",
// "picked_up" and "delivering" all meant the same state). The fine-grained
// field wins when it is recognizable; the coarse field is the fallback.
//
// The rebuilt store only ever writes canonical statuses, so nothing in the
// service itself calls this. It exists for migration tooling that ingests
// exports of the legacy records.
//
// Unrecognized vocabulary is an error, not a guess.
func StatusFromLegacy(status, orderStatus string) (Status, error) {
	if s, ok := statusFromLegacyToken(orderStatus); ok {
		return s, nil
	}
	if s, ok := statusFromLegacyToken(status); ok {
		return s, nil
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("legacy status %q / order_status %q is not recognized", status, orderStatus),
	)
}

// statusFromLegacyToken maps one legacy status token to the canonical enum.
// Tokens are compared case-insensitively with surrounding whitespace ignored.
func statusFromLegacyToken(token string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "pending", "created", "new", "placed":
		return Pending, true
	case "assigned_driver", "driver_assigned", "assigned":
		return AssignedDriver, true
	case "driver_accepted", "accepted", "ready_for_pickup", "ready":
		return DriverAccepted, true
	case "picked_up", "pickedup", "on_the_way", "delivering", "out_for_delivery":
		return PickedUp, true
	case "delivered", "completed":
		return Delivered, true
	case "cancelled", "canceled", "rejected":
		return Cancelled, true
	default:
		return Unknown, false
	}
}
