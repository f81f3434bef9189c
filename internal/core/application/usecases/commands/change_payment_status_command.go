package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
		"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
	)
)

// ChangePaymentStatusCommand represents a request to change the payment
// state of an existing shipment. An empty transaction id means "keep the
// stored one"; payment corrections in any direction are allowed.
type ChangePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus
	transactionID string

	guard guard.ConstructorGuard
}

// NewChangePaymentStatusCommand creates a payment state command.
// Validates the order id and enum membership of the payment status.
func NewChangePaymentStatusCommand(
	orderID kernel.UUID,
	paymentStatus order.PaymentStatus,
	transactionID string,
) (ChangePaymentStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	return ChangePaymentStatusCommand{
		orderID:       orderID,
		paymentStatus: paymentStatus,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the internal identifier of the order to update.
func (c ChangePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the target payment state.
func (c ChangePaymentStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

// TransactionID returns the new transaction identifier ("" keeps the
// stored value).
func (c ChangePaymentStatusCommand) TransactionID() string {
	return c.transactionID
}
