package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetDashboardMetricsQueryIsNotConstructed = errors.New(
		"GetDashboardMetricsQuery must be created via NewGetDashboardMetricsQuery constructor",
	)
)

// GetDashboardMetricsQuery computes the operational dashboard aggregates
// over a snapshot of all shipments.
//
// Example:
//
//	query := NewGetDashboardMetricsQuery()
//	metrics, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute dashboard: %w", err)
//	}
//	fmt.Printf("%d orders, %.2f revenue\n", metrics.TotalOrders, metrics.TotalRevenue)
type GetDashboardMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardMetricsQuery creates a dashboard aggregation query. This
// is a parameterless query over the whole store.
func NewGetDashboardMetricsQuery() GetDashboardMetricsQuery {
	return GetDashboardMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardMetricsQueryIsNotConstructed)
}

// GetDashboardMetricsQueryResponse carries the dashboard aggregates.
// AverageDeliveryTime is in fractional days; it is 0 when no delivery has
// completed yet.
type GetDashboardMetricsQueryResponse struct {
	TotalOrders         int
	TotalRevenue        float64
	PendingOrders       int
	DeliveredOrders     int
	InTransitOrders     int
	AverageDeliveryTime float64
}
