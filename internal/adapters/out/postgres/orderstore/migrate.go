package orderstore

import (
	"context"

	"support/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the customers, orders, and logistics tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&CustomerDTO{}, &OrderDTO{}, &LogisticsDTO{})
	if err != nil {
		return errs.NewInfrastructureError("postgres", err)
	}
	return nil
}

// Seed inserts the demo dataset: three customers, four orders, four tracking
// records. Re-running is idempotent; existing rows are left untouched.
func Seed(ctx context.Context, db *gorm.DB) error {
	customers := []CustomerDTO{
		{ID: 1, Name: "John Doe", Email: "john.doe@email.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane.smith@email.com"},
		{ID: 3, Name: "Mike Johnson", Email: "mike.johnson@email.com"},
	}

	customerID := func(id int64) *int64 { return &id }
	orders := []OrderDTO{
		{
			OrderID:        1,
			CustomerID:     customerID(1),
			ProductName:    "Wireless Earbuds",
			DeliveryStatus: "In Transit",
			ExpectedDate:   "2024-01-10",
			OrderDate:      "2024-01-03",
		},
		{
			OrderID:        2,
			CustomerID:     customerID(2),
			ProductName:    "Smartphone Case",
			DeliveryStatus: "Processing",
			ExpectedDate:   "2024-01-12",
			OrderDate:      "2024-01-05",
		},
		{
			OrderID:        3,
			CustomerID:     customerID(1),
			ProductName:    "USB-C Cable",
			DeliveryStatus: "Shipped",
			ExpectedDate:   "2024-01-09",
			OrderDate:      "2024-01-07",
		},
		{
			OrderID:        4,
			CustomerID:     customerID(3),
			ProductName:    "Bluetooth Speaker",
			DeliveryStatus: "Delivered",
			ExpectedDate:   "2024-01-07",
			OrderDate:      "2024-01-01",
		},
	}

	logistics := []LogisticsDTO{
		{TrackingID: "TRK001", OrderID: 1, CurrentLocation: "Bangalore Hub", LastUpdate: "2024-01-08 09:30"},
		{TrackingID: "TRK002", OrderID: 2, CurrentLocation: "Warehouse Delhi", LastUpdate: "2024-01-08 03:15"},
		{TrackingID: "TRK003", OrderID: 3, CurrentLocation: "Mumbai Sorting Center", LastUpdate: "2024-01-08 13:45"},
		{TrackingID: "TRK004", OrderID: 4, CurrentLocation: "Delivered - Customer Location", LastUpdate: "2024-01-07 16:00"},
	}

	tx := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true})
	if err := tx.Create(&customers).Error; err != nil {
		return errs.NewInfrastructureError("postgres", err)
	}
	if err := tx.Create(&orders).Error; err != nil {
		return errs.NewInfrastructureError("postgres", err)
	}
	if err := tx.Create(&logistics).Error; err != nil {
		return errs.NewInfrastructureError("postgres", err)
	}

	return nil
}
