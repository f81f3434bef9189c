package order

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
//
// The happy path runs
//
//	pending -> processing -> shipped -> in_transit -> out_for_delivery -> delivered
//
// with failed_delivery and returned as alternate outcomes reachable from any
// in-flight state. No transition graph is enforced: any valid status may
// follow any other. Offering only sensible transitions is the caller's
// responsibility; the domain validates enum membership only.
type Status string

const (
	StatusPending        Status = "pending"
	StatusProcessing     Status = "processing"
	StatusShipped        Status = "shipped"
	StatusInTransit      Status = "in_transit"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusFailedDelivery Status = "failed_delivery"
	StatusReturned       Status = "returned"
)

// getValidStatuses returns the closed set of lifecycle states.
func getValidStatuses() map[Status]bool {
	return map[Status]bool{
		StatusPending:        true,
		StatusProcessing:     true,
		StatusShipped:        true,
		StatusInTransit:      true,
		StatusOutForDelivery: true,
		StatusDelivered:      true,
		StatusFailedDelivery: true,
		StatusReturned:       true,
	}
}

// ParseStatus converts a wire/storage string into a Status.
// Returns an error for anything outside the closed enumeration.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status belongs to the closed enumeration.
// The zero value ("") is invalid.
func (s Status) Validate() error {
	if !getValidStatuses()[s] {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid order status", string(s)),
		)
	}
	return nil
}

// String returns the snake_case wire form, e.g. "out_for_delivery".
func (s Status) String() string {
	return string(s)
}

// InPendingStage reports whether the order still awaits fulfillment
// (pending or processing). Feeds the dashboard "pending" bucket.
func (s Status) InPendingStage() bool {
	return s == StatusPending || s == StatusProcessing
}

// InTransitStage reports whether the parcel is moving through the network
// (shipped, in_transit or out_for_delivery). Feeds the dashboard
// "in transit" bucket.
func (s Status) InTransitStage() bool {
	return s == StatusShipped || s == StatusInTransit || s == StatusOutForDelivery
}

// IsTerminal reports whether the order reached an outcome state
// (delivered, failed_delivery or returned).
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailedDelivery || s == StatusReturned
}
