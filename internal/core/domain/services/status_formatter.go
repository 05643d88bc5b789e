package services

import (
	"fmt"

	"support/internal/core/domain/model/order"
)

// unknownField is the placeholder rendered for a missing location or
// expected delivery date. Messages never show a blank where data is absent.
const unknownField = "unknown"

// StatusMessageFormatter renders a human-readable status sentence from a
// resolved order view. The template is chosen by delivery status,
// case-insensitively; statuses outside the canonical set get a generic
// template that carries the raw status text.
//
// Formatting is deterministic: the same view always yields the same message.
type StatusMessageFormatter struct{}

// NewStatusMessageFormatter creates a new StatusMessageFormatter instance.
func NewStatusMessageFormatter() StatusMessageFormatter {
	return StatusMessageFormatter{}
}

// Format returns the status sentence for the view.
func (StatusMessageFormatter) Format(view order.ResolvedOrderView) string {
	product := view.ProductName
	id := view.ID.String()
	location := unknownField
	if view.Shipment != nil && view.Shipment.CurrentLocation != "" {
		location = view.Shipment.CurrentLocation
	}
	expected := view.ExpectedDate
	if expected == "" {
		expected = unknownField
	}

	switch {
	case view.Status.Is(order.StatusDelivered):
		return fmt.Sprintf("Your %s (Order #%s) has been delivered!", product, id)
	case view.Status.Is(order.StatusInTransit):
		return fmt.Sprintf("Your %s (Order #%s) is currently in transit and located at %s. Expected delivery: %s.",
			product, id, location, expected)
	case view.Status.Is(order.StatusShipped):
		return fmt.Sprintf("Your %s (Order #%s) has been shipped and is currently at %s. Expected delivery: %s.",
			product, id, location, expected)
	case view.Status.Is(order.StatusProcessing):
		return fmt.Sprintf("Your %s (Order #%s) is currently being processed. Expected delivery: %s.",
			product, id, expected)
	default:
		return fmt.Sprintf("Your %s (Order #%s) status: %s. Expected delivery: %s.",
			product, id, view.Status.String(), expected)
	}
}
