package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery looks up a single shipment by its public tracking
// identifier. This is the customer-facing read: the caller knows the
// tracking code from their receipt, not the internal order id.
//
// Example:
//
//	trackingID, err := kernel.TrackingIDFromString("AB-123456-CD")
//	if err != nil {
//	    return fmt.Errorf("bad tracking code: %w", err)
//	}
//
//	query, _ := NewTrackOrderQuery(trackingID)
//	shipment, err := handler.Handle(ctx, query)
type TrackOrderQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking lookup for the given identifier.
func NewTrackOrderQuery(trackingID kernel.TrackingID) (TrackOrderQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingID returns the tracking identifier to look up.
func (q TrackOrderQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}
