package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/ports"
)

// ChangePaymentStatusCommandHandler records payment state changes. Payment
// and delivery timelines are independent: this handler never touches the
// status history, it only updates the payment fields and updatedAt.
type ChangePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewChangePaymentStatusCommandHandler creates a handler for payment state
// commands.
func NewChangePaymentStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
) ChangePaymentStatusCommandHandler {
	return ChangePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle applies the payment change and returns the updated order.
// A missing order surfaces as errs.ObjectNotFoundError, unchanged.
func (h *ChangePaymentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangePaymentStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangePayment(cmd.PaymentStatus(), cmd.TransactionID(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
