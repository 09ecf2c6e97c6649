package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/models"
	"github.com/commerce-ops/dashboard-backend-go/internal/database/repositories"
)

// OrderRepository implements repositories.OrderRepository
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *sqlx.DB) repositories.OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new order with its source-assigned ID
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (id, user_id, amount, product, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, order.ID, order.UserID, order.Amount, order.Product, order.CreatedAt); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// GetByCustomerID retrieves all orders belonging to one customer
func (r *OrderRepository) GetByCustomerID(ctx context.Context, customerID int) ([]models.Order, error) {
	query := `
		SELECT id, user_id, amount, product, created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY id
	`

	orders := []models.Order{}
	if err := r.db.SelectContext(ctx, &orders, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to get orders for customer %d: %w", customerID, err)
	}

	return orders, nil
}

// GetAll retrieves every order in insertion order
func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	query := `SELECT id, user_id, amount, product, created_at FROM orders ORDER BY id`

	orders := []models.Order{}
	if err := r.db.SelectContext(ctx, &orders, query); err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}
