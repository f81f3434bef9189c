// Package kernel provides core domain primitives shared across the parcel
// tracking domain model.
//
// The package includes:
//   - UUID: a value object for aggregate identifiers with validation and comparison
//   - TrackingID: the customer-facing shipment identifier (LL-DDDDDD-LL) with
//     generation and strict parsing
//
// Both primitives are immutable value objects whose zero values fail
// validation, so they can only enter the domain through their constructors.
package kernel
