package customers

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/models"
	"github.com/commerce-ops/dashboard-backend-go/internal/database/repositories"
	apperrors "github.com/commerce-ops/dashboard-backend-go/pkg/errors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Service orchestrates customer listing, lookup, and per-row stats
// enrichment over the record store.
type Service struct {
	customers repositories.CustomerRepository
	orders    repositories.OrderRepository
	log       *logrus.Logger
}

// NewService creates a new customer service
func NewService(customers repositories.CustomerRepository, orders repositories.OrderRepository, log *logrus.Logger) *Service {
	return &Service{
		customers: customers,
		orders:    orders,
		log:       log,
	}
}

// ListParams are the raw, unvalidated query inputs for a listing request
type ListParams struct {
	Page   string
	Limit  string
	Search string
	Sort   string
	Order  string
}

// ListResult is one page of customers with stats plus pagination state
type ListResult struct {
	Customers  []models.CustomerWithStats
	Pagination models.Pagination
}

// normalize coerces raw params into a valid repository query. Bad values
// never error; they fall back to defaults.
func normalize(p ListParams) (repositories.ListQuery, int) {
	page := parseIntParam(p.Page, defaultPage)
	if page < 1 {
		page = 1
	}

	limit := parseIntParam(p.Limit, defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sortField := repositories.SortByCreatedAt
	switch p.Sort {
	case repositories.SortByName, repositories.SortByEmail, repositories.SortByOrderCount:
		sortField = p.Sort
	}

	return repositories.ListQuery{
		Search:    strings.TrimSpace(p.Search),
		SortField: sortField,
		Ascending: p.Order == "asc",
		Offset:    (page - 1) * limit,
		Limit:     limit,
	}, page
}

func parseIntParam(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// List returns one page of customers, each enriched with order stats.
// Stats computations fan out concurrently and all complete before the
// page is returned; a single row's stats failure zeroes that row only.
func (s *Service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query, page := normalize(params)

	rows, total, err := s.customers.List(ctx, query)
	if err != nil {
		return nil, apperrors.Storef(err, "failed to list customers")
	}

	enriched := make([]models.CustomerWithStats, len(rows))
	var wg sync.WaitGroup
	for i, customer := range rows {
		wg.Add(1)
		go func(i int, customer models.Customer) {
			defer wg.Done()
			enriched[i] = models.CustomerWithStats{
				Customer:      customer,
				CustomerStats: s.OrderStats(ctx, customer.ID),
			}
		}(i, customer)
	}
	wg.Wait()

	totalPages := 0
	if total > 0 {
		totalPages = (total + query.Limit - 1) / query.Limit
	}

	return &ListResult{
		Customers: enriched,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      query.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetByID retrieves a single customer with stats. A non-positive ID is a
// validation failure, checked before any store I/O; a missing customer is
// a not-found outcome, never conflated with the former.
func (s *Service) GetByID(ctx context.Context, id int) (*models.CustomerWithStats, error) {
	if id <= 0 {
		return nil, apperrors.Validationf("invalid customer ID: must be a positive integer")
	}

	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, err
		}
		return nil, apperrors.Storef(err, "failed to get customer %d", id)
	}

	return &models.CustomerWithStats{
		Customer:      *customer,
		CustomerStats: s.OrderStats(ctx, id),
	}, nil
}

// Exists reports whether a customer exists. Store errors degrade to
// false: this is only a guard before a fetch, and a false negative costs
// a redundant not-found response, nothing more.
func (s *Service) Exists(ctx context.Context, id int) bool {
	if id <= 0 {
		return false
	}

	exists, err := s.customers.Exists(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("customer_id", id).
			Warn("Failed to check customer existence")
		return false
	}

	return exists
}

// OrdersForCustomer returns all orders for one customer, guarding the
// fetch with validation and an existence check.
func (s *Service) OrdersForCustomer(ctx context.Context, id int) ([]models.Order, error) {
	if id <= 0 {
		return nil, apperrors.Validationf("invalid customer ID: must be a positive integer")
	}

	if !s.Exists(ctx, id) {
		return nil, apperrors.NotFoundf("customer with ID %d not found", id)
	}

	orders, err := s.orders.GetByCustomerID(ctx, id)
	if err != nil {
		return nil, apperrors.Storef(err, "failed to get orders for customer %d", id)
	}

	return orders, nil
}
