package ports

import (
	"context"

	"support/internal/core/domain/model/kernel"
	"support/internal/core/domain/model/order"
)

// OrderStore defines the read-only lookup contract over order, customer,
// and shipment records. All operations are side-effect free.
//
// A lookup that matches no record returns an error satisfying
// errs.ErrObjectNotFound (for single lookups) or an empty slice (for list
// lookups) — never a panic. A connectivity failure surfaces as an error
// satisfying errs.ErrInfrastructure, distinguishable from "not found", and
// callers must treat it as a retryable fault rather than a negative result.
type OrderStore interface {
	// GetOrderView retrieves the joined projection for one order reference.
	GetOrderView(ctx context.Context, id kernel.OrderID) (order.ResolvedOrderView, error)

	// FindByCustomerEmail retrieves the orders of the customer with the
	// exact email, most recent order first.
	FindByCustomerEmail(ctx context.Context, email string) ([]order.ResolvedOrderView, error)

	// FindByCustomerName retrieves orders whose customer name contains the
	// fragment, case-insensitively, most recent order first.
	FindByCustomerName(ctx context.Context, fragment string) ([]order.ResolvedOrderView, error)

	// FindByProduct retrieves orders whose product name contains the
	// fragment, case-insensitively, most recent order first.
	FindByProduct(ctx context.Context, fragment string) ([]order.ResolvedOrderView, error)
}
