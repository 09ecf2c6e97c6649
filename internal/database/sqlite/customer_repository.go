package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/models"
	"github.com/commerce-ops/dashboard-backend-go/internal/database/repositories"
	apperrors "github.com/commerce-ops/dashboard-backend-go/pkg/errors"
)

// CustomerRepository implements repositories.CustomerRepository
type CustomerRepository struct {
	db *sqlx.DB
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *sqlx.DB) repositories.CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer. The ID comes from the source data, not
// the database, so inserts are explicit-id.
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO users (id, name, email, created_at)
		VALUES (?, ?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, customer.ID, customer.Name, customer.Email, customer.CreatedAt); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*models.Customer, error) {
	query := `
		SELECT id, name, email, created_at
		FROM users
		WHERE id = ?
	`

	customer := &models.Customer{}
	err := r.db.GetContext(ctx, customer, query, id)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFoundf("customer with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// GetAll retrieves every customer
func (r *CustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	query := `SELECT id, name, email, created_at FROM users ORDER BY id`

	customers := []models.Customer{}
	if err := r.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}

// Exists reports whether a customer with the given ID exists
func (r *CustomerRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}

	return exists, nil
}

// List retrieves a filtered, sorted page of customers along with the
// exact count of the filtered set. Search matches name or email as a
// case-insensitive substring.
func (r *CustomerRepository) List(ctx context.Context, q repositories.ListQuery) ([]models.Customer, int, error) {
	var where string
	var args []interface{}

	if q.Search != "" {
		where = `WHERE LOWER(u.name) LIKE ? OR LOWER(u.email) LIKE ?`
		pattern := "%" + strings.ToLower(q.Search) + "%"
		args = append(args, pattern, pattern)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users u %s`, where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	direction := "DESC"
	if q.Ascending {
		direction = "ASC"
	}

	var listQuery string
	if q.SortField == repositories.SortByOrderCount {
		listQuery = fmt.Sprintf(`
			SELECT u.id, u.name, u.email, u.created_at
			FROM users u
			LEFT JOIN orders o ON o.user_id = u.id
			%s
			GROUP BY u.id, u.name, u.email, u.created_at
			ORDER BY COUNT(o.id) %s, u.id
			LIMIT ? OFFSET ?
		`, where, direction)
	} else {
		listQuery = fmt.Sprintf(`
			SELECT u.id, u.name, u.email, u.created_at
			FROM users u
			%s
			ORDER BY u.%s %s, u.id
			LIMIT ? OFFSET ?
		`, where, sortColumn(q.SortField), direction)
	}

	args = append(args, q.Limit, q.Offset)

	customers := []models.Customer{}
	if err := r.db.SelectContext(ctx, &customers, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}

// sortColumn maps a sort field to its column. The service layer already
// normalizes unknown fields, but an unmapped value must never reach the
// query string.
func sortColumn(field string) string {
	switch field {
	case repositories.SortByName:
		return "name"
	case repositories.SortByEmail:
		return "email"
	default:
		return "created_at"
	}
}
