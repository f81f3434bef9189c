package queries

import (
	"context"
	"database/sql"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderQueryResponse is the read-model projection of a shipment, including
// its full delivery timeline. Shared by the tracking lookup and the order
// listing.
type OrderQueryResponse struct {
	ID                 kernel.UUID
	TrackingID         string
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	SenderAddress      string
	ReceiverAddress    string
	PackageDescription string
	WeightKg           float64
	Amount             float64
	PaymentMethod      string
	TransactionID      string
	Status             order.Status
	PaymentStatus      order.PaymentStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
	EstimatedDelivery  time.Time
	StatusHistory      []StatusUpdateResponse
}

// StatusUpdateResponse is one entry of a shipment's delivery timeline.
type StatusUpdateResponse struct {
	Status     order.Status
	OccurredAt time.Time
	Location   string
	Note       string
}

// orderColumns is the projection shared by the order read queries. Column
// order must match scanOrderRow.
const orderColumns = `
	id,
	tracking_id,
	customer_name,
	customer_phone,
	customer_email,
	sender_address,
	receiver_address,
	package_description,
	weight_kg,
	amount,
	payment_method,
	transaction_id,
	status,
	payment_status,
	created_at,
	updated_at,
	estimated_delivery
`

func scanOrderRow(rows *sql.Rows) (OrderQueryResponse, error) {
	var resp OrderQueryResponse
	var id uuid.UUID
	var status, paymentStatus string

	err := rows.Scan(
		&id,
		&resp.TrackingID,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerEmail,
		&resp.SenderAddress,
		&resp.ReceiverAddress,
		&resp.PackageDescription,
		&resp.WeightKg,
		&resp.Amount,
		&resp.PaymentMethod,
		&resp.TransactionID,
		&status,
		&paymentStatus,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.EstimatedDelivery,
	)
	if err != nil {
		return OrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status)
	resp.PaymentStatus = order.PaymentStatus(paymentStatus)

	return resp, nil
}

// loadStatusHistory fetches the delivery timelines for the given order ids
// in one query, keyed by order id, each in append order.
func loadStatusHistory(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []kernel.UUID,
) (map[kernel.UUID][]StatusUpdateResponse, error) {
	history := make(map[kernel.UUID][]StatusUpdateResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return history, nil
	}

	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.String())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			status,
			occurred_at,
			location,
			note
		FROM status_updates
		WHERE order_id IN ?
		ORDER BY order_id, seq
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry StatusUpdateResponse
		var orderID uuid.UUID
		var status string

		err = rows.Scan(
			&orderID,
			&status,
			&entry.OccurredAt,
			&entry.Location,
			&entry.Note,
		)
		if err != nil {
			return nil, err
		}

		key, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.Status = order.Status(status)
		history[key] = append(history[key], entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
