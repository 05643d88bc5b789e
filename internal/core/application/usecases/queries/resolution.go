package queries

import "support/internal/core/domain/model/order"

// Resolution is the tagged result of resolving one order-related message.
// Succeeded is the explicit discriminant: a "not found" outcome is a valid
// resolution with Succeeded=false, not an error. At most one of Order and
// Orders is set; both are nil for guidance-only resolutions.
type Resolution struct {
	Succeeded bool
	Message   string
	Order     *order.ResolvedOrderView
	Orders    []order.ResolvedOrderView
}
