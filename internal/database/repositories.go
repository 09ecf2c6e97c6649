package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/repositories"
	"github.com/commerce-ops/dashboard-backend-go/internal/database/sqlite"
)

// Repositories holds all repository instances
type Repositories struct {
	Customer repositories.CustomerRepository
	Order    repositories.OrderRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Customer: sqlite.NewCustomerRepository(db),
		Order:    sqlite.NewOrderRepository(db),
	}
}
