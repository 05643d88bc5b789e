package orderstore

import (
	"context"
	"database/sql"

	"support/internal/core/domain/model/kernel"
	"support/internal/core/domain/model/order"
	"support/internal/pkg/errs"

	"gorm.io/gorm"
)

// Shared projection over the three tables. Customer and logistics columns
// are nullable: an order never loses its row because a join arm is empty.
const viewSelect = `
	SELECT
		o.order_id,
		o.product_name,
		o.delivery_status,
		o.expected_date,
		o.order_date,
		c.name,
		c.email,
		l.tracking_id,
		l.current_location,
		l.last_update
	FROM orders o
	LEFT JOIN customers c ON c.id = o.customer_id
	LEFT JOIN logistics l ON l.order_id = o.order_id
`

const recentFirst = ` ORDER BY o.order_date DESC, o.order_id DESC`

// GormOrderStore implements ports.OrderStore using GORM.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// GetOrderView retrieves the joined projection for one order reference.
func (s *GormOrderStore) GetOrderView(ctx context.Context, id kernel.OrderID) (order.ResolvedOrderView, error) {
	if err := id.Validate(); err != nil {
		return order.ResolvedOrderView{}, err
	}

	views, err := s.queryViews(ctx, viewSelect+` WHERE o.order_id = ?`, id.Value())
	if err != nil {
		return order.ResolvedOrderView{}, err
	}
	if len(views) == 0 {
		return order.ResolvedOrderView{}, errs.NewObjectNotFoundError("order", id.String())
	}

	return views[0], nil
}

// FindByCustomerEmail retrieves the orders of the customer with the exact
// email, most recent order first.
func (s *GormOrderStore) FindByCustomerEmail(ctx context.Context, email string) ([]order.ResolvedOrderView, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return s.queryViews(ctx, viewSelect+` WHERE c.email = ?`+recentFirst, email)
}

// FindByCustomerName retrieves orders whose customer name contains the
// fragment, case-insensitively, most recent order first.
func (s *GormOrderStore) FindByCustomerName(ctx context.Context, fragment string) ([]order.ResolvedOrderView, error) {
	if fragment == "" {
		return nil, errs.NewValueIsRequiredError("fragment")
	}

	return s.queryViews(ctx, viewSelect+` WHERE c.name ILIKE ?`+recentFirst, contains(fragment))
}

// FindByProduct retrieves orders whose product name contains the fragment,
// case-insensitively, most recent order first.
func (s *GormOrderStore) FindByProduct(ctx context.Context, fragment string) ([]order.ResolvedOrderView, error) {
	if fragment == "" {
		return nil, errs.NewValueIsRequiredError("fragment")
	}

	return s.queryViews(ctx, viewSelect+` WHERE o.product_name ILIKE ?`+recentFirst, contains(fragment))
}

func contains(fragment string) string {
	return "%" + fragment + "%"
}

func (s *GormOrderStore) queryViews(
	ctx context.Context,
	query string,
	args ...any,
) ([]order.ResolvedOrderView, error) {
	rows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, errs.NewInfrastructureError("postgres", err)
	}
	defer rows.Close()

	views := make([]order.ResolvedOrderView, 0)
	for rows.Next() {
		view, scanErr := scanView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewInfrastructureError("postgres", err)
	}

	return views, nil
}

func scanView(rows *sql.Rows) (order.ResolvedOrderView, error) {
	var (
		rawID           int64
		productName     string
		deliveryStatus  string
		expectedDate    sql.NullString
		orderDate       sql.NullString
		customerName    sql.NullString
		customerEmail   sql.NullString
		trackingID      sql.NullString
		currentLocation sql.NullString
		lastUpdate      sql.NullString
	)

	err := rows.Scan(
		&rawID,
		&productName,
		&deliveryStatus,
		&expectedDate,
		&orderDate,
		&customerName,
		&customerEmail,
		&trackingID,
		&currentLocation,
		&lastUpdate,
	)
	if err != nil {
		return order.ResolvedOrderView{}, errs.NewInfrastructureError("postgres", err)
	}

	id, err := kernel.NewOrderID(rawID)
	if err != nil {
		return order.ResolvedOrderView{}, err
	}

	view, err := order.NewResolvedOrderView(id, productName, order.DeliveryStatus(deliveryStatus))
	if err != nil {
		return order.ResolvedOrderView{}, err
	}
	view.ExpectedDate = expectedDate.String
	view.OrderDate = orderDate.String

	if customerName.Valid || customerEmail.Valid {
		view.Customer = &order.Customer{
			Name:  customerName.String,
			Email: customerEmail.String,
		}
	}
	if trackingID.Valid {
		view.Shipment = &order.Shipment{
			TrackingID:      trackingID.String,
			CurrentLocation: currentLocation.String,
			LastUpdate:      lastUpdate.String,
		}
	}

	return view, nil
}
