// Package order provides the domain model for parcel shipments. It
// implements the Order aggregate root with its append-only status history
// and independent payment state.
//
// The package includes:
//   - Order: the aggregate root for one tracked shipment
//   - Status: the closed delivery lifecycle enumeration
//   - PaymentStatus: the closed payment state enumeration
//   - StatusUpdate: one immutable entry in the status history
//
// Key business rules:
//   - Every order is created in pending status with a seeded history entry
//   - The status history only grows and the current status always equals
//     the most recently appended entry
//   - Status transitions are intentionally unrestricted: the system records
//     whatever the operator enters and trusts the caller to offer only
//     sensible transitions
//   - Payment state changes never touch the status history
//   - The delivery estimate is fixed at creation to 5-7 days out
package order
