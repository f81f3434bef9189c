package http

import (
	"time"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/order"
)

// Error is the uniform error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest carries the shipment details for order registration.
type CreateOrderRequest struct {
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone"`
	CustomerEmail      string  `json:"customerEmail"`
	SenderAddress      string  `json:"senderAddress"`
	ReceiverAddress    string  `json:"receiverAddress"`
	PackageDescription string  `json:"packageDescription"`
	WeightKg           float64 `json:"weightKg"`
	Amount             float64 `json:"amount"`
	PaymentMethod      string  `json:"paymentMethod"`
	TransactionID      string  `json:"transactionId"`
}

// UpdateStatusRequest carries a lifecycle transition. Location and note are
// optional operator annotations.
type UpdateStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Note     string `json:"note"`
}

// UpdatePaymentRequest carries a payment state change. An empty transaction
// id keeps the stored one.
type UpdatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus"`
	TransactionID string `json:"transactionId"`
}

// StatusUpdateResponse is one entry of the delivery timeline.
type StatusUpdateResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// OrderResponse is the full shipment representation returned by the API.
type OrderResponse struct {
	ID                 string                 `json:"id"`
	TrackingID         string                 `json:"trackingId"`
	CustomerName       string                 `json:"customerName"`
	CustomerPhone      string                 `json:"customerPhone"`
	CustomerEmail      string                 `json:"customerEmail"`
	SenderAddress      string                 `json:"senderAddress"`
	ReceiverAddress    string                 `json:"receiverAddress"`
	PackageDescription string                 `json:"packageDescription"`
	WeightKg           float64                `json:"weightKg"`
	Amount             float64                `json:"amount"`
	PaymentMethod      string                 `json:"paymentMethod,omitempty"`
	TransactionID      string                 `json:"transactionId,omitempty"`
	Status             string                 `json:"status"`
	PaymentStatus      string                 `json:"paymentStatus"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
	EstimatedDelivery  time.Time              `json:"estimatedDelivery"`
	StatusHistory      []StatusUpdateResponse `json:"statusHistory"`
}

// DashboardResponse carries the operational dashboard aggregates.
type DashboardResponse struct {
	TotalOrders         int     `json:"totalOrders"`
	TotalRevenue        float64 `json:"totalRevenue"`
	PendingOrders       int     `json:"pendingOrders"`
	DeliveredOrders     int     `json:"deliveredOrders"`
	InTransitOrders     int     `json:"inTransitOrders"`
	AverageDeliveryTime float64 `json:"averageDeliveryTime"`
}

// orderResponseFromAggregate maps a domain aggregate to its API
// representation. Used by the command endpoints, which return the mutated
// aggregate directly.
func orderResponseFromAggregate(o *order.Order) OrderResponse {
	history := o.StatusHistory()
	historyResp := make([]StatusUpdateResponse, 0, len(history))
	for _, update := range history {
		historyResp = append(historyResp, StatusUpdateResponse{
			Status:    update.Status().String(),
			Timestamp: update.Timestamp(),
			Location:  update.Location(),
			Note:      update.Note(),
		})
	}

	return OrderResponse{
		ID:                 o.ID().String(),
		TrackingID:         o.TrackingID().String(),
		CustomerName:       o.CustomerName(),
		CustomerPhone:      o.CustomerPhone(),
		CustomerEmail:      o.CustomerEmail(),
		SenderAddress:      o.SenderAddress(),
		ReceiverAddress:    o.ReceiverAddress(),
		PackageDescription: o.PackageDescription(),
		WeightKg:           o.WeightKg(),
		Amount:             o.Amount(),
		PaymentMethod:      o.PaymentMethod(),
		TransactionID:      o.TransactionID(),
		Status:             o.Status().String(),
		PaymentStatus:      o.PaymentStatus().String(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		EstimatedDelivery:  o.EstimatedDelivery(),
		StatusHistory:      historyResp,
	}
}

// orderResponseFromQuery maps a read-model projection to its API
// representation. Used by the query endpoints.
func orderResponseFromQuery(q queries.OrderQueryResponse) OrderResponse {
	historyResp := make([]StatusUpdateResponse, 0, len(q.StatusHistory))
	for _, update := range q.StatusHistory {
		historyResp = append(historyResp, StatusUpdateResponse{
			Status:    update.Status.String(),
			Timestamp: update.OccurredAt,
			Location:  update.Location,
			Note:      update.Note,
		})
	}

	return OrderResponse{
		ID:                 q.ID.String(),
		TrackingID:         q.TrackingID,
		CustomerName:       q.CustomerName,
		CustomerPhone:      q.CustomerPhone,
		CustomerEmail:      q.CustomerEmail,
		SenderAddress:      q.SenderAddress,
		ReceiverAddress:    q.ReceiverAddress,
		PackageDescription: q.PackageDescription,
		WeightKg:           q.WeightKg,
		Amount:             q.Amount,
		PaymentMethod:      q.PaymentMethod,
		TransactionID:      q.TransactionID,
		Status:             q.Status.String(),
		PaymentStatus:      q.PaymentStatus.String(),
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
		EstimatedDelivery:  q.EstimatedDelivery,
		StatusHistory:      historyResp,
	}
}
