package analytics

import (
	"sort"
	"time"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/models"
)

const (
	topProductLimit  = 5
	recentOrderLimit = 10
	unknownCustomer  = "Unknown"
)

// ProductStat aggregates one product's orders
type ProductStat struct {
	Product string  `json:"product"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// MonthRevenue is one month's revenue in the monthly series
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// OrderWithCustomer is an order joined with its owner's identity
type OrderWithCustomer struct {
	models.Order
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// Snapshot is the full analytics view, computed fresh from the complete
// customer and order sets on every request. AverageOrderValue is nil when
// there are no orders; a zero there would mask the empty-data case.
type Snapshot struct {
	TotalOrders       int                 `json:"totalOrders"`
	TotalRevenue      float64             `json:"totalRevenue"`
	AverageOrderValue *float64            `json:"averageOrderValue"`
	TopProducts       []ProductStat       `json:"topProducts"`
	MonthlyRevenue    []MonthRevenue      `json:"monthlyRevenue"`
	RecentOrders      []OrderWithCustomer `json:"recentOrders"`
}

// Compute builds a Snapshot from its inputs alone: no I/O, and identical
// inputs always produce identical output regardless of map iteration
// order.
func Compute(customers []models.Customer, orders []models.Order) *Snapshot {
	byID := make(map[int]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	var totalRevenue float64
	for _, o := range orders {
		totalRevenue += o.Amount
	}

	snapshot := &Snapshot{
		TotalOrders:    len(orders),
		TotalRevenue:   totalRevenue,
		TopProducts:    topProducts(orders),
		MonthlyRevenue: monthlyRevenue(orders),
		RecentOrders:   recentOrders(orders, byID),
	}

	if len(orders) > 0 {
		avg := totalRevenue / float64(len(orders))
		snapshot.AverageOrderValue = &avg
	}

	return snapshot
}

// topProducts groups orders by product label and returns the top entries
// by revenue. Revenue ties keep the order products were first seen in the
// order set, which a stable sort over first-encounter order preserves.
func topProducts(orders []models.Order) []ProductStat {
	index := make(map[string]int, len(orders))
	stats := []ProductStat{}

	for _, o := range orders {
		i, seen := index[o.Product]
		if !seen {
			index[o.Product] = len(stats)
			stats = append(stats, ProductStat{Product: o.Product})
			i = len(stats) - 1
		}
		stats[i].Count++
		stats[i].Revenue += o.Amount
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Revenue > stats[b].Revenue
	})

	if len(stats) > topProductLimit {
		stats = stats[:topProductLimit]
	}
	return stats
}

// monthlyRevenue sums amounts per calendar month. Entries are keyed and
// sorted by the numeric year-month value, then formatted to the "Jan 2006"
// display label; sorting the labels themselves would order Dec 2023 after
// Jan 2024.
func monthlyRevenue(orders []models.Order) []MonthRevenue {
	totals := make(map[int]float64)

	for _, o := range orders {
		t, ok := models.ParseTimestamp(o.CreatedAt)
		if !ok {
			continue
		}
		key := t.Year()*12 + int(t.Month()) - 1
		totals[key] += o.Amount
	}

	keys := make([]int, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	series := make([]MonthRevenue, 0, len(keys))
	for _, k := range keys {
		label := time.Date(k/12, time.Month(k%12+1), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		series = append(series, MonthRevenue{Month: label, Revenue: totals[k]})
	}
	return series
}

// recentOrders joins every order with its customer and returns the latest
// entries by timestamp. Orders without a matching customer keep a
// sentinel identity rather than failing the computation.
func recentOrders(orders []models.Order, byID map[int]models.Customer) []OrderWithCustomer {
	joined := make([]OrderWithCustomer, 0, len(orders))
	for _, o := range orders {
		row := OrderWithCustomer{
			Order:     o,
			UserName:  unknownCustomer,
			UserEmail: unknownCustomer,
		}
		if c, ok := byID[o.UserID]; ok {
			row.UserName = c.Name
			row.UserEmail = c.Email
		}
		joined = append(joined, row)
	}

	sort.SliceStable(joined, func(a, b int) bool {
		ta, _ := models.ParseTimestamp(joined[a].CreatedAt)
		tb, _ := models.ParseTimestamp(joined[b].CreatedAt)
		return ta.After(tb)
	})

	if len(joined) > recentOrderLimit {
		joined = joined[:recentOrderLimit]
	}
	return joined
}
