package order

import (
	"time"

	"parceltrack/internal/pkg/errs"
)

// StatusUpdate is one immutable entry in an order's status history.
// Location and note are optional free-text annotations supplied by the
// operator who recorded the transition.
type StatusUpdate struct {
	status    Status
	timestamp time.Time
	location  string
	note      string
}

// NewStatusUpdate creates a history entry. The status must be a member of
// the lifecycle enumeration and the timestamp must be set; location and note
// may be empty.
func NewStatusUpdate(status Status, timestamp time.Time, location string, note string) (StatusUpdate, error) {
	if err := status.Validate(); err != nil {
		return StatusUpdate{}, err
	}

	if timestamp.IsZero() {
		return StatusUpdate{}, errs.NewValueIsRequiredError("timestamp")
	}

	return StatusUpdate{
		status:    status,
		timestamp: timestamp,
		location:  location,
		note:      note,
	}, nil
}

// Status returns the lifecycle state recorded by this entry.
func (u StatusUpdate) Status() Status {
	return u.status
}

// Timestamp returns when the transition was recorded.
func (u StatusUpdate) Timestamp() time.Time {
	return u.timestamp
}

// Location returns the optional location annotation ("" if absent).
func (u StatusUpdate) Location() string {
	return u.location
}

// Note returns the optional note annotation ("" if absent).
func (u StatusUpdate) Note() string {
	return u.note
}

// Validate checks that the entry was created via NewStatusUpdate.
// The zero value carries an empty status and fails.
func (u StatusUpdate) Validate() error {
	if err := u.status.Validate(); err != nil {
		return err
	}
	if u.timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	return nil
}
