package repositories

import (
	"context"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/models"
)

// Sortable customer list fields. Anything else falls back to created_at
// at the service layer, so implementations only ever see these values.
const (
	SortByName       = "name"
	SortByEmail      = "email"
	SortByCreatedAt  = "created_at"
	SortByOrderCount = "order_count"
)

// ListQuery describes a filtered, sorted, ranged customer listing
type ListQuery struct {
	Search    string
	SortField string
	Ascending bool
	Offset    int
	Limit     int
}

// CustomerRepository defines customer data access methods. List returns
// the page plus the exact total count of the filtered set.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id int) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	List(ctx context.Context, q ListQuery) ([]models.Customer, int, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// OrderRepository defines order data access methods
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByCustomerID(ctx context.Context, customerID int) ([]models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}
