package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to record a delivery
// lifecycle transition for an existing shipment. Location and note are
// optional operator annotations carried into the history entry.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	status   order.Status
	location string
	note     string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status transition command.
// Validates the order id and enum membership of the target status; any
// valid status is accepted regardless of the order's current state.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	location string,
	note string,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:  orderID,
		status:   status,
		location: location,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the internal identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target lifecycle state.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// Location returns the optional location annotation ("" if absent).
func (c ChangeOrderStatusCommand) Location() string {
	return c.location
}

// Note returns the optional note annotation ("" if absent).
func (c ChangeOrderStatusCommand) Note() string {
	return c.note
}
