package customers

import (
	"context"
	"math"
	"time"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/models"
)

// OrderStats computes order statistics for one customer. A store failure
// here is absorbed: the caller gets zeroed stats instead of an error, so
// one bad row never fails a whole listing page.
func (s *Service) OrderStats(ctx context.Context, customerID int) models.CustomerStats {
	orders, err := s.orders.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.log.WithError(err).WithField("customer_id", customerID).
			Warn("Failed to fetch order stats, returning zeroed stats")
		return models.CustomerStats{}
	}

	return computeStats(orders)
}

// computeStats derives {count, rounded total, last order date} from an
// order set. TotalSpent is rounded to 2 decimal places, half away from
// zero. LastOrderDate is the raw timestamp of the latest order, nil when
// the set is empty.
func computeStats(orders []models.Order) models.CustomerStats {
	stats := models.CustomerStats{OrderCount: len(orders)}

	var sum float64
	var latest time.Time
	var latestRaw string

	for _, order := range orders {
		sum += order.Amount

		t, ok := models.ParseTimestamp(order.CreatedAt)
		if !ok {
			continue
		}
		if latestRaw == "" || t.After(latest) {
			latest = t
			latestRaw = order.CreatedAt
		}
	}

	stats.TotalSpent = math.Round(sum*100) / 100
	if latestRaw != "" {
		stats.LastOrderDate = &latestRaw
	}

	return stats
}
