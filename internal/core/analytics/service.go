package analytics

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/repositories"
	apperrors "github.com/commerce-ops/dashboard-backend-go/pkg/errors"
)

// Service fetches the full customer and order sets and hands them to the
// pure aggregator. Nothing is cached between requests.
type Service struct {
	customers repositories.CustomerRepository
	orders    repositories.OrderRepository
	log       *logrus.Logger
}

// NewService creates a new analytics service
func NewService(customers repositories.CustomerRepository, orders repositories.OrderRepository, log *logrus.Logger) *Service {
	return &Service{
		customers: customers,
		orders:    orders,
		log:       log,
	}
}

// Snapshot computes a fresh analytics snapshot from the current store
// contents
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	customers, err := s.customers.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Storef(err, "failed to fetch customers for analytics")
	}

	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Storef(err, "failed to fetch orders for analytics")
	}

	return Compute(customers, orders), nil
}
