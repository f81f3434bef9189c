// Package services provides domain services that compute over multiple
// order aggregates.
//
// The package includes:
//   - MetricsCalculator: folds a snapshot of orders into dashboard
//     aggregates (counts, revenue, average delivery duration)
//
// Domain services here are pure functions over aggregates; persistence and
// snapshot retrieval live behind the ports layer.
package services
