package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrStatusHistoryIsEmpty is returned when restoring an order whose stored
	// status history is empty. Every persisted order carries at least the
	// creation-time pending entry.
	ErrStatusHistoryIsEmpty = errors.New("status history must contain at least the initial pending entry")
)

// initialStatusNote annotates the seeded pending entry of every new order.
const initialStatusNote = "Order received and pending processing"

// Delivery window policy: the estimate lands 5 to 7 whole days after
// creation, chosen at random per order.
const (
	minDeliveryDays = 5
	maxDeliveryDays = 7
)

// Details carries the caller-supplied shipment attributes for order creation.
// All customer and address fields are required; weight must be positive and
// amount non-negative. PaymentMethod and TransactionID are opaque and
// optional (TransactionID is present only for electronic payments).
type Details struct {
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
}

// Order is the aggregate root for one tracked parcel shipment.
//
// Invariants:
//   - the status history is never empty and only grows; entries are never
//     reordered or rewritten
//   - the first history entry is always the creation-time pending entry
//   - the current status equals the status of the last appended entry
//   - updatedAt never precedes createdAt and is bumped on every mutation
//   - the tracking identifier is immutable after creation
//
// Status transitions are deliberately unrestricted (any status may follow
// any other); see Status.
type Order struct {
	id         kernel.UUID
	trackingID kernel.TrackingID

	customerName       string
	customerPhone      string
	customerEmail      string
	senderAddress      string
	receiverAddress    string
	packageDescription string
	weightKg           float64

	amount        float64
	paymentMethod string
	transactionID string
	paymentStatus PaymentStatus

	status            Status
	createdAt         time.Time
	updatedAt         time.Time
	estimatedDelivery time.Time
	statusHistory     []StatusUpdate

	isConstructed bool
}

// EstimateDelivery computes the promised delivery timestamp for an order
// created at the given time: createdAt plus a uniformly random 5 to 7 whole
// days. Randomness comes from the process-global source; the result is
// always strictly after createdAt.
func EstimateDelivery(createdAt time.Time) time.Time {
	days := minDeliveryDays + rand.IntN(maxDeliveryDays-minDeliveryDays+1) //nolint:gosec // policy knob, not security
	return createdAt.AddDate(0, 0, days)
}

// NewOrder creates a new shipment in pending status.
//
// The status history is seeded with a single pending entry stamped at
// createdAt. The payment status defaults to unpaid, or to paid when the
// order carries a positive amount together with a transaction identifier.
//
// Returns a validation error if any required detail is missing or invalid,
// or if estimatedDelivery does not lie after createdAt.
func NewOrder(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	details Details,
	createdAt time.Time,
	estimatedDelivery time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingID(trackingID),
		o.setDetails(details),
		o.setTimestamps(createdAt, estimatedDelivery),
	); err != nil {
		return nil, err
	}

	o.paymentStatus = derivePaymentStatus(details)

	initial, err := NewStatusUpdate(StatusPending, createdAt, "", initialStatusNote)
	if err != nil {
		return nil, err
	}
	o.statusHistory = []StatusUpdate{initial}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. It revalidates the
// stored state but does not reseed the history or rederive the payment
// status; the stored values are authoritative.
func RestoreOrder(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	details Details,
	status Status,
	paymentStatus PaymentStatus,
	createdAt time.Time,
	updatedAt time.Time,
	estimatedDelivery time.Time,
	statusHistory []StatusUpdate,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingID(trackingID),
		o.setDetails(details),
		o.setTimestamps(createdAt, estimatedDelivery),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if len(statusHistory) == 0 {
		return nil, ErrStatusHistoryIsEmpty
	}
	for _, update := range statusHistory {
		if err := update.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.updatedAt = updatedAt
	o.statusHistory = append([]StatusUpdate(nil), statusHistory...)

	return o, nil
}

// derivePaymentStatus implements the creation-time default: paid when a
// positive amount arrives together with a transaction id, unpaid otherwise.
func derivePaymentStatus(details Details) PaymentStatus {
	if details.Amount > 0 && details.TransactionID != "" {
		return PaymentPaid
	}
	return PaymentUnpaid
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ChangeStatus records a lifecycle transition: it appends a history entry
// stamped at the given time, sets the current status and bumps updatedAt.
//
// Any valid status may follow any other; out-of-order transitions are
// accepted by contract and the caller is trusted to offer sensible ones.
func (o *Order) ChangeStatus(newStatus Status, at time.Time, location string, note string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	update, err := NewStatusUpdate(newStatus, at, location, note)
	if err != nil {
		return err
	}

	o.statusHistory = append(o.statusHistory, update)
	o.status = newStatus
	o.updatedAt = at
	return nil
}

// ChangePayment records a payment state change and bumps updatedAt. An empty
// transactionID leaves the stored transaction identifier untouched. Payment
// changes never append to the status history; delivery and payment timelines
// are independent.
func (o *Order) ChangePayment(newStatus PaymentStatus, transactionID string, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := newStatus.Validate(); err != nil {
		return err
	}

	if at.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}

	o.paymentStatus = newStatus
	if transactionID != "" {
		o.transactionID = transactionID
	}
	o.updatedAt = at
	return nil
}

// FirstDeliveredAt returns the timestamp of the earliest history entry with
// delivered status. The second return value is false when no such entry
// exists, which keeps defensively inconsistent orders out of delivery-time
// averages.
func (o *Order) FirstDeliveredAt() (time.Time, bool) {
	for _, update := range o.statusHistory {
		if update.Status() == StatusDelivered {
			return update.Timestamp(), true
		}
	}
	return time.Time{}, false
}

// IsOverdue reports whether the order is past its promised delivery time
// while still short of a terminal outcome.
func (o *Order) IsOverdue(now time.Time) bool {
	return now.After(o.estimatedDelivery) && !o.status.IsTerminal()
}

// ID returns the internal store identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingID returns the customer-facing shipment identifier.
func (o *Order) TrackingID() kernel.TrackingID {
	return o.trackingID
}

// CustomerName returns the recipient customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CustomerEmail returns the customer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// SenderAddress returns the pickup address.
func (o *Order) SenderAddress() string {
	return o.senderAddress
}

// ReceiverAddress returns the delivery address.
func (o *Order) ReceiverAddress() string {
	return o.receiverAddress
}

// PackageDescription returns the free-text description of the parcel.
func (o *Order) PackageDescription() string {
	return o.packageDescription
}

// WeightKg returns the parcel weight in kilograms.
func (o *Order) WeightKg() float64 {
	return o.weightKg
}

// Amount returns the delivery fee.
func (o *Order) Amount() float64 {
	return o.amount
}

// PaymentMethod returns the payment method label ("" if not specified).
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// TransactionID returns the payment transaction identifier ("" if absent).
func (o *Order) TransactionID() string {
	return o.transactionID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the most recent mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// EstimatedDelivery returns the promised delivery timestamp computed at
// creation.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// StatusHistory returns a copy of the append-only transition log, oldest
// first. Callers cannot mutate the aggregate's own log through it.
func (o *Order) StatusHistory() []StatusUpdate {
	return append([]StatusUpdate(nil), o.statusHistory...)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	o.trackingID = trackingID
	return nil
}

func (o *Order) setDetails(details Details) error {
	requiredFields := []struct {
		name  string
		value string
	}{
		{"customerName", details.CustomerName},
		{"customerPhone", details.CustomerPhone},
		{"customerEmail", details.CustomerEmail},
		{"senderAddress", details.SenderAddress},
		{"receiverAddress", details.ReceiverAddress},
		{"packageDescription", details.PackageDescription},
	}

	var errsJoined []error
	for _, field := range requiredFields {
		if field.value == "" {
			errsJoined = append(errsJoined, errs.NewValueIsRequiredError(field.name))
		}
	}

	if details.WeightKg <= 0 {
		errsJoined = append(errsJoined, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%v is not greater than 0", details.WeightKg),
		))
	}

	if details.Amount < 0 {
		errsJoined = append(errsJoined, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is negative", details.Amount),
		))
	}

	if err := errors.Join(errsJoined...); err != nil {
		return err
	}

	o.customerName = details.CustomerName
	o.customerPhone = details.CustomerPhone
	o.customerEmail = details.CustomerEmail
	o.senderAddress = details.SenderAddress
	o.receiverAddress = details.ReceiverAddress
	o.packageDescription = details.PackageDescription
	o.weightKg = details.WeightKg
	o.amount = details.Amount
	o.paymentMethod = details.PaymentMethod
	o.transactionID = details.TransactionID
	return nil
}

func (o *Order) setTimestamps(createdAt time.Time, estimatedDelivery time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	if !estimatedDelivery.After(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedDelivery",
			fmt.Errorf("estimated delivery %s is not after creation time %s", estimatedDelivery, createdAt),
		)
	}

	o.createdAt = createdAt
	o.updatedAt = createdAt
	o.estimatedDelivery = estimatedDelivery
	return nil
}
