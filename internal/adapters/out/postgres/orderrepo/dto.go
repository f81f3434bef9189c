// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery timeline lives in a child table keyed by (order_id, seq) so
// that existing history rows are never rewritten.
//
// Timestamp columns carry domain-assigned values; GORM's automatic
// created_at/updated_at tracking is disabled so the injected clock stays the
// single source of time.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID         string    `gorm:"type:varchar(12);uniqueIndex;not null"`
	CustomerName       string    `gorm:"not null"`
	CustomerPhone      string    `gorm:"not null"`
	CustomerEmail      string    `gorm:"not null"`
	SenderAddress      string    `gorm:"not null"`
	ReceiverAddress    string    `gorm:"not null"`
	PackageDescription string    `gorm:"not null"`
	WeightKg           float64
	Amount             float64
	PaymentMethod      string
	TransactionID      string
	Status             string `gorm:"type:varchar(32);index;not null"`
	PaymentStatus      string `gorm:"type:varchar(32);not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime:false"`
	EstimatedDelivery  time.Time

	StatusHistory []StatusUpdateDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusUpdateDTO represents one delivery timeline entry. Seq is the
// zero-based position within the order's history; the composite primary key
// makes re-inserting an already persisted entry a no-op under
// ON CONFLICT DO NOTHING.
type StatusUpdateDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey"`
	Status     string    `gorm:"type:varchar(32);not null"`
	OccurredAt time.Time `gorm:"not null"`
	Location   string
	Note       string
}

// TableName specifies the database table name for timeline entries.
func (StatusUpdateDTO) TableName() string {
	return "status_updates"
}

// fromDomain converts an order domain aggregate to its database
// representation, including the full delivery timeline.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()

	history := aggregate.StatusHistory()
	historyDTOs := make([]StatusUpdateDTO, 0, len(history))
	for seq, update := range history {
		historyDTOs = append(historyDTOs, StatusUpdateDTO{
			OrderID:    id,
			Seq:        seq,
			Status:     update.Status().String(),
			OccurredAt: update.Timestamp(),
			Location:   update.Location(),
			Note:       update.Note(),
		})
	}

	return OrderDTO{
		ID:                 id,
		TrackingID:         aggregate.TrackingID().String(),
		CustomerName:       aggregate.CustomerName(),
		CustomerPhone:      aggregate.CustomerPhone(),
		CustomerEmail:      aggregate.CustomerEmail(),
		SenderAddress:      aggregate.SenderAddress(),
		ReceiverAddress:    aggregate.ReceiverAddress(),
		PackageDescription: aggregate.PackageDescription(),
		WeightKg:           aggregate.WeightKg(),
		Amount:             aggregate.Amount(),
		PaymentMethod:      aggregate.PaymentMethod(),
		TransactionID:      aggregate.TransactionID(),
		Status:             aggregate.Status().String(),
		PaymentStatus:      aggregate.PaymentStatus().String(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		EstimatedDelivery:  aggregate.EstimatedDelivery(),
		StatusHistory:      historyDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the delivery timeline using
// RestoreOrder. Expects dto.StatusHistory to be loaded in seq order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusUpdate, 0, len(dto.StatusHistory))
	for _, entry := range dto.StatusHistory {
		entryStatus, entryErr := order.ParseStatus(entry.Status)
		if entryErr != nil {
			return nil, entryErr
		}

		update, entryErr := order.NewStatusUpdate(entryStatus, entry.OccurredAt, entry.Location, entry.Note)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, update)
	}

	return order.RestoreOrder(
		id,
		trackingID,
		order.Details{
			CustomerName:       dto.CustomerName,
			CustomerPhone:      dto.CustomerPhone,
			CustomerEmail:      dto.CustomerEmail,
			SenderAddress:      dto.SenderAddress,
			ReceiverAddress:    dto.ReceiverAddress,
			PackageDescription: dto.PackageDescription,
			WeightKg:           dto.WeightKg,
			Amount:             dto.Amount,
			PaymentMethod:      dto.PaymentMethod,
			TransactionID:      dto.TransactionID,
		},
		status,
		paymentStatus,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.EstimatedDelivery,
		history,
	)
}
