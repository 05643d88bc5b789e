// Package order defines the read-side domain model for customer orders:
// the open DeliveryStatus enumeration and the ResolvedOrderView projection
// that joins an order with its customer and shipment records.
//
// The pipeline never mutates orders; everything in this package is a value
// produced by the order store and consumed by the resolution use cases.
package order
