package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/ports"
)

// ChangeOrderStatusCommandHandler records lifecycle transitions: it loads
// the order, appends the history entry stamped with the injected clock's
// time and persists the updated aggregate in one transaction.
//
// A missing order surfaces as errs.ObjectNotFoundError from the repository,
// unchanged; no stored record is altered in that case.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewChangeOrderStatusCommandHandler creates a handler for status
// transition commands.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle applies the transition and returns the updated order.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
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

	if err = aggregate.ChangeStatus(cmd.Status(), h.clock.Now(), cmd.Location(), cmd.Note()); err != nil {
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
