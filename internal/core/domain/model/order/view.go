package order

import (
	"support/internal/core/domain/model/kernel"
	"support/internal/pkg/errs"
)

// Customer carries the customer fields of a resolved order view.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Shipment carries the tracking fields of a resolved order view.
// A shipment may be absent for an order that has not been dispatched yet.
type Shipment struct {
	TrackingID      string `json:"tracking_id"`
	CurrentLocation string `json:"current_location"`
	LastUpdate      string `json:"last_update"`
}

// ResolvedOrderView is a read-only projection joining an order with its
// customer and shipment data. It is constructed per query by the order
// store and never persisted.
//
// Customer and Shipment are independently nullable: a missing shipment does
// not imply a missing customer, and vice versa.
type ResolvedOrderView struct {
	ID           kernel.OrderID `json:"order_id"`
	ProductName  string         `json:"product_name"`
	Status       DeliveryStatus `json:"delivery_status"`
	ExpectedDate string         `json:"expected_date,omitempty"`
	OrderDate    string         `json:"order_date,omitempty"`
	Customer     *Customer      `json:"customer,omitempty"`
	Shipment     *Shipment      `json:"shipment,omitempty"`
}

// NewResolvedOrderView creates a projection for the given order.
// Customer and shipment data are attached afterwards by the store when the
// joined rows carry them.
func NewResolvedOrderView(id kernel.OrderID, productName string, status DeliveryStatus) (ResolvedOrderView, error) {
	if err := id.Validate(); err != nil {
		return ResolvedOrderView{}, err
	}
	if productName == "" {
		return ResolvedOrderView{}, errs.NewValueIsRequiredError("productName")
	}

	return ResolvedOrderView{
		ID:          id,
		ProductName: productName,
		Status:      status,
	}, nil
}

// Validate checks the projection invariants: a constructed order reference
// and a non-empty product name.
func (v ResolvedOrderView) Validate() error {
	if err := v.ID.Validate(); err != nil {
		return err
	}
	if v.ProductName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	return nil
}
