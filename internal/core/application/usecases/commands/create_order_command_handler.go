package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// maxTrackingIDAttempts bounds collision retries during creation. With
// ~676 million possible identifiers, exhausting this limit indicates a
// broken randomness source rather than bad luck.
const maxTrackingIDAttempts = 5

// ErrTrackingIDSpaceExhausted is returned when repeated tracking id draws
// keep colliding with stored orders.
var ErrTrackingIDSpaceExhausted = errors.New("could not generate a unique tracking id")

// CreateOrderCommandHandler registers new shipments: it assigns the
// tracking identifier, stamps creation time from the injected clock,
// computes the delivery estimate and persists the pending order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s accepted, track it as %s", created.ID(), created.TrackingID())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a unit of work factory for transactional persistence and a
// clock for creation timestamps.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the creation command and returns the persisted order.
//
// The tracking identifier is entropy-only, so the handler verifies it
// against the store and redraws on collision (bounded attempts). The order
// row and its seeded history entry are written in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	trackingID, err := h.uniqueTrackingID(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		trackingID,
		cmd.Details(),
		now,
		order.EstimateDelivery(now),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// uniqueTrackingID draws tracking identifiers until one is absent from the
// store. A lookup error other than not-found aborts immediately.
func (h *CreateOrderCommandHandler) uniqueTrackingID(
	ctx context.Context,
	orderRepo ports.OrderRepository,
) (kernel.TrackingID, error) {
	for range maxTrackingIDAttempts {
		candidate := kernel.GenerateTrackingID()

		_, err := orderRepo.GetByTrackingID(ctx, candidate)
		if err == nil {
			// Collision with an existing shipment, draw again.
			continue
		}
		if errors.Is(err, errs.ErrObjectNotFound) {
			return candidate, nil
		}

		return kernel.TrackingID{}, err
	}

	return kernel.TrackingID{}, ErrTrackingIDSpaceExhausted
}
