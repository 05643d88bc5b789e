package order

import "strings"

// DeliveryStatus represents the shipping state of an order as recorded by
// the fulfilment system. It is an open enumeration: the canonical values
// below get status-specific message templates, while any other free-text
// status is carried through verbatim and rendered with a generic template.
// An unknown status is never an error.
type DeliveryStatus string

const (
	// StatusProcessing means the order is accepted but not yet dispatched.
	StatusProcessing DeliveryStatus = "Processing"

	// StatusShipped means the order left the warehouse.
	StatusShipped DeliveryStatus = "Shipped"

	// StatusInTransit means the order is between logistics hubs.
	StatusInTransit DeliveryStatus = "In Transit"

	// StatusDelivered means the order reached the customer.
	StatusDelivered DeliveryStatus = "Delivered"
)

// String returns the raw status text.
func (s DeliveryStatus) String() string {
	return string(s)
}

// Is reports whether the status matches the given canonical value,
// ignoring case.
func (s DeliveryStatus) Is(canonical DeliveryStatus) bool {
	return strings.EqualFold(string(s), string(canonical))
}

// IsCanonical reports whether the status matches one of the canonical
// values, ignoring case.
func (s DeliveryStatus) IsCanonical() bool {
	return s.Is(StatusProcessing) || s.Is(StatusShipped) ||
		s.Is(StatusInTransit) || s.Is(StatusDelivered)
}
