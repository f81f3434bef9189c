package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"parceltrack/internal/pkg/errs"
)

// ErrTrackingIDIsNotConstructed is returned when validating a zero-value
// TrackingID that was not created through a constructor function.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingID must be created via GenerateTrackingID or TrackingIDFromString",
)

// trackingIDRegexp pins the customer-facing format: two uppercase letters,
// six digits, two uppercase letters, dash separated.
var trackingIDRegexp = regexp.MustCompile(`^[A-Z]{2}-[0-9]{6}-[A-Z]{2}$`)

const trackingIDLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TrackingID is the customer-facing shipment identifier, distinct from the
// internal store key. Format: LL-DDDDDD-LL (e.g. "KR-482910-QT").
//
// The generator provides entropy only; global uniqueness is the caller's
// responsibility (check the store and regenerate on collision).
type TrackingID struct {
	value string
}

// GenerateTrackingID produces a new random tracking identifier.
// Randomness comes from the process-global math/rand/v2 source, which is
// never fixed-seeded, making collisions rare but not impossible.
func GenerateTrackingID() TrackingID {
	var sb strings.Builder
	sb.Grow(12)

	for range 2 {
		sb.WriteByte(trackingIDLetters[rand.IntN(len(trackingIDLetters))]) //nolint:gosec // entropy, not security
	}
	sb.WriteByte('-')
	for range 6 {
		sb.WriteByte(byte('0' + rand.IntN(10))) //nolint:gosec // entropy, not security
	}
	sb.WriteByte('-')
	for range 2 {
		sb.WriteByte(trackingIDLetters[rand.IntN(len(trackingIDLetters))]) //nolint:gosec // entropy, not security
	}

	return TrackingID{value: sb.String()}
}

// TrackingIDFromString parses a tracking identifier received from a request
// path or reconstructed from persistence. The format is validated strictly.
func TrackingIDFromString(s string) (TrackingID, error) {
	if s == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingID")
	}

	if !trackingIDRegexp.MatchString(s) {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingID",
			fmt.Errorf("%q does not match format LL-DDDDDD-LL", s),
		)
	}

	return TrackingID{value: s}, nil
}

// String returns the textual form, e.g. "KR-482910-QT".
func (t TrackingID) String() string {
	return t.value
}

// IsEqual reports whether two tracking identifiers are the same.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingIDIsNotConstructed for the zero value and an
// invalid-value error if the stored string does not match the format.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}

	if !trackingIDRegexp.MatchString(t.value) {
		return errs.NewValueIsInvalidErrorWithCause(
			"trackingID",
			fmt.Errorf("%q does not match format LL-DDDDDD-LL", t.value),
		)
	}

	return nil
}
