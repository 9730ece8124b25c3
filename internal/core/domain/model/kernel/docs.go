// Package kernel contains shared value objects used across the domain model.
//
// The package provides:
//   - GeoPoint: a validated WGS84 coordinate pair for delivery confirmations
//
// Value objects in this package are immutable, validate their invariants at
// construction time, and use constructor guards so zero values are rejected.
package kernel
