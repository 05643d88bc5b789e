// Package orderstore provides the PostgreSQL-backed read store over
// customers, orders, and logistics records. It projects joined rows into
// read-only order views; it never writes domain state.
package orderstore

// CustomerDTO represents the database structure for customer records.
type CustomerDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Email string `gorm:"not null;uniqueIndex"`
}

// TableName specifies the database table name for customer records.
func (CustomerDTO) TableName() string {
	return "customers"
}

// OrderDTO represents the database structure for order records.
// The human-facing order number is the primary key; there is no surrogate ID.
type OrderDTO struct {
	OrderID        int64  `gorm:"primaryKey"`
	CustomerID     *int64 `gorm:"index"`
	ProductName    string `gorm:"not null"`
	DeliveryStatus string `gorm:"not null"`
	ExpectedDate   string
	OrderDate      string `gorm:"index"`
}

// TableName specifies the database table name for order records.
func (OrderDTO) TableName() string {
	return "orders"
}

// LogisticsDTO represents the database structure for shipment tracking
// records. At most one tracking record exists per order.
type LogisticsDTO struct {
	TrackingID      string `gorm:"primaryKey"`
	OrderID         int64  `gorm:"uniqueIndex"`
	CurrentLocation string `gorm:"not null"`
	LastUpdate      string `gorm:"not null"`
}

// TableName specifies the database table name for tracking records.
func (LogisticsDTO) TableName() string {
	return "logistics"
}
