package kernel

import (
	"strconv"

	"support/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly
// initialized through NewOrderID. This error is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID")

// OrderID is a value object that represents an order reference: a positive
// integer uniquely identifying one order. The zero value is invalid and must
// be constructed via NewOrderID.
//
// OrderID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewOrderID(42)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "42"
type OrderID struct {
	value int64
}

// NewOrderID creates an OrderID from a raw integer.
// Returns an error if the value is not positive.
func NewOrderID(value int64) (OrderID, error) {
	if value <= 0 {
		return OrderID{}, errs.NewValueIsInvalidError("order reference must be a positive integer")
	}
	return OrderID{value: value}, nil
}

// Value returns the numeric order reference.
func (id OrderID) Value() int64 {
	return id.value
}

// String returns the decimal representation of the order reference.
func (id OrderID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two order references for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was constructed via NewOrderID.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	if id.value <= 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// MarshalJSON serializes the order reference as a bare number.
func (id OrderID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(id.value, 10)), nil
}

// UnmarshalJSON restores an order reference from its numeric form.
func (id *OrderID) UnmarshalJSON(data []byte) error {
	value, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("OrderID", err)
	}

	parsed, err := NewOrderID(value)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
