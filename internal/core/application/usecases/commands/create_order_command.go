package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new shipment.
// Carries the customer, routing, package and payment details supplied by
// the caller; tracking id, timestamps and delivery estimate are assigned
// by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    "Amina Diallo", "+220 555 0134", "amina@example.com",
//	    "12 Harbor Rd, Banjul", "7 Market Lane, Serekunda",
//	    "Books, 2 boxes", 4.5, 25, "card", "txn_9f2c1",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName       string
	customerPhone      string
	customerEmail      string
	senderAddress      string
	receiverAddress    string
	packageDescription string
	weightKg           float64
	amount             float64
	paymentMethod      string
	transactionID      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment.
// All customer and address fields must be non-empty, the weight positive
// and the amount non-negative; payment method and transaction id are
// optional opaque labels. Validation failures are reported before any
// store interaction takes place.
func NewCreateOrderCommand(
	customerName string,
	customerPhone string,
	customerEmail string,
	senderAddress string,
	receiverAddress string,
	packageDescription string,
	weightKg float64,
	amount float64,
	paymentMethod string,
	transactionID string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequiredField("customerName", customerName, &cmd.customerName),
		cmd.setRequiredField("customerPhone", customerPhone, &cmd.customerPhone),
		cmd.setRequiredField("customerEmail", customerEmail, &cmd.customerEmail),
		cmd.setRequiredField("senderAddress", senderAddress, &cmd.senderAddress),
		cmd.setRequiredField("receiverAddress", receiverAddress, &cmd.receiverAddress),
		cmd.setRequiredField("packageDescription", packageDescription, &cmd.packageDescription),
		cmd.setWeightKg(weightKg),
		cmd.setAmount(amount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details assembles the domain-level shipment attributes from the command.
func (c CreateOrderCommand) Details() order.Details {
	return order.Details{
		CustomerName:       c.customerName,
		CustomerPhone:      c.customerPhone,
		CustomerEmail:      c.customerEmail,
		SenderAddress:      c.senderAddress,
		ReceiverAddress:    c.receiverAddress,
		PackageDescription: c.packageDescription,
		WeightKg:           c.weightKg,
		Amount:             c.amount,
		PaymentMethod:      c.paymentMethod,
		TransactionID:      c.transactionID,
	}
}

func (c *CreateOrderCommand) setRequiredField(name string, value string, target *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}

	*target = value
	return nil
}

func (c *CreateOrderCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%v is not greater than 0", weightKg),
		)
	}

	c.weightKg = weightKg
	return nil
}

func (c *CreateOrderCommand) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is negative", amount),
		)
	}

	c.amount = amount
	return nil
}
