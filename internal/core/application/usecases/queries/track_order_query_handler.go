package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler resolves a tracking identifier to the shipment's
// current state and full delivery timeline, reading the store directly.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the lookup. An unknown tracking identifier returns
// errs.ObjectNotFoundError; the timeline comes back in append order.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID().String()).Rows()
	if err != nil {
		return OrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderQueryResponse{}, err
		}
		return OrderQueryResponse{}, errs.NewObjectNotFoundError("trackingID", query.TrackingID().String())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderQueryResponse{}, err
	}

	history, err := loadStatusHistory(ctx, h.db, []kernel.UUID{resp.ID})
	if err != nil {
		return OrderQueryResponse{}, err
	}
	resp.StatusHistory = history[resp.ID]

	return resp, nil
}
