package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations may fail with store errors, which the core propagates
// unchanged; retries, caching and transaction policy are the adapter's
// concern.
type OrderRepository interface {
	// Add persists a new order aggregate, including its seeded status history.
	// Fails if an order with the same id or tracking id already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order: mutated fields plus any
	// status history entries appended since the last write. History rows
	// already persisted are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its internal identifier, with its full
	// status history. Returns errs.ObjectNotFoundError if absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingID retrieves an order by its customer-facing tracking
	// identifier. Returns errs.ObjectNotFoundError if absent.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*order.Order, error)

	// GetAll retrieves every order, newest first (createdAt descending),
	// with full status histories. Feeds the dashboard metrics snapshot.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
