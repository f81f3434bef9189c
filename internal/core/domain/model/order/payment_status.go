package order

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order. Unlike the
// delivery lifecycle, payment states carry no ordering at all: corrections
// such as paid -> unpaid or refunded -> paid are allowed.
type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentRefunded      PaymentStatus = "refunded"
)

func getValidPaymentStatuses() map[PaymentStatus]bool {
	return map[PaymentStatus]bool{
		PaymentUnpaid:        true,
		PaymentPartiallyPaid: true,
		PaymentPaid:          true,
		PaymentRefunded:      true,
	}
}

// ParsePaymentStatus converts a wire/storage string into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the payment status belongs to the closed enumeration.
func (s PaymentStatus) Validate() error {
	if !getValidPaymentStatuses()[s] {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%q is not a valid payment status", string(s)),
		)
	}
	return nil
}

// String returns the snake_case wire form, e.g. "partially_paid".
func (s PaymentStatus) String() string {
	return string(s)
}
