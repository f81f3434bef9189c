package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/services"
)

// OrderSnapshotReader loads the full set of order aggregates for snapshot
// computations.
type OrderSnapshotReader interface {
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// GetDashboardMetricsQueryHandler folds the current order snapshot into
// dashboard aggregates. Unlike the other read handlers it goes through the
// aggregate repository, because the delivery-time average depends on
// domain rules (first delivered timeline entry) rather than raw columns.
type GetDashboardMetricsQueryHandler struct {
	reader     OrderSnapshotReader
	calculator services.MetricsCalculator
}

// NewGetDashboardMetricsQueryHandler creates a handler for dashboard
// aggregation queries.
func NewGetDashboardMetricsQueryHandler(reader OrderSnapshotReader) GetDashboardMetricsQueryHandler {
	return GetDashboardMetricsQueryHandler{
		reader:     reader,
		calculator: services.NewMetricsCalculator(),
	}
}

// Handle loads the snapshot and computes the aggregates.
func (h GetDashboardMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardMetricsQuery,
) (GetDashboardMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	orders, err := h.reader.GetAll(ctx)
	if err != nil {
		return GetDashboardMetricsQueryResponse{}, err
	}

	metrics := h.calculator.Calculate(orders)

	return GetDashboardMetricsQueryResponse{
		TotalOrders:         metrics.TotalOrders,
		TotalRevenue:        metrics.TotalRevenue,
		PendingOrders:       metrics.PendingOrders,
		DeliveredOrders:     metrics.DeliveredOrders,
		InTransitOrders:     metrics.InTransitOrders,
		AverageDeliveryTime: metrics.AverageDeliveryTime,
	}, nil
}
