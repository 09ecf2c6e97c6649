package analytics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/models"
)

func TestCompute_EmptyInput(t *testing.T) {
	snapshot := Compute(nil, nil)

	assert.Equal(t, 0, snapshot.TotalOrders)
	assert.Equal(t, 0.0, snapshot.TotalRevenue)
	assert.Nil(t, snapshot.AverageOrderValue, "average order value must be an explicit sentinel with zero orders")
	assert.Empty(t, snapshot.TopProducts)
	assert.Empty(t, snapshot.MonthlyRevenue)
	assert.Empty(t, snapshot.RecentOrders)
}

func TestCompute_Totals(t *testing.T) {
	orders := []models.Order{
		{ID: 1, UserID: 1, Amount: 10, Product: "A", CreatedAt: "2024-01-15T11:00:00Z"},
		{ID: 2, UserID: 1, Amount: 30, Product: "B", CreatedAt: "2024-01-16T11:00:00Z"},
	}

	snapshot := Compute(nil, orders)

	assert.Equal(t, 2, snapshot.TotalOrders)
	assert.Equal(t, 40.0, snapshot.TotalRevenue)
	require.NotNil(t, snapshot.AverageOrderValue)
	assert.Equal(t, 20.0, *snapshot.AverageOrderValue)
}

func TestCompute_TopProducts(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Product: "A", Amount: 10, CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: 2, Product: "B", Amount: 30, CreatedAt: "2024-01-02T00:00:00Z"},
		{ID: 3, Product: "A", Amount: 10, CreatedAt: "2024-01-03T00:00:00Z"},
	}

	snapshot := Compute(nil, orders)

	require.Len(t, snapshot.TopProducts, 2)
	assert.Equal(t, ProductStat{Product: "B", Count: 1, Revenue: 30}, snapshot.TopProducts[0])
	assert.Equal(t, ProductStat{Product: "A", Count: 2, Revenue: 20}, snapshot.TopProducts[1])
}

func TestCompute_TopProductsTieBreak(t *testing.T) {
	// Equal revenue: first-encountered product wins the earlier slot.
	orders := []models.Order{
		{ID: 1, Product: "X", Amount: 15, CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: 2, Product: "Y", Amount: 15, CreatedAt: "2024-01-02T00:00:00Z"},
	}

	snapshot := Compute(nil, orders)

	require.Len(t, snapshot.TopProducts, 2)
	assert.Equal(t, "X", snapshot.TopProducts[0].Product)
	assert.Equal(t, "Y", snapshot.TopProducts[1].Product)
}

func TestCompute_TopProductsTruncatedToFive(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Product: "P1", Amount: 1, CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: 2, Product: "P2", Amount: 2, CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: 3, Product: "P3", Amount: 3, CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: 4, Product: "P4", Amount: 4, CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: 5, Product: "P5", Amount: 5, CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: 6, Product: "P6", Amount: 6, CreatedAt: "2024-01-01T00:00:00Z"},
	}

	snapshot := Compute(nil, orders)

	require.Len(t, snapshot.TopProducts, 5)
	assert.Equal(t, "P6", snapshot.TopProducts[0].Product)
	assert.Equal(t, "P2", snapshot.TopProducts[4].Product)
}

func TestCompute_MonthlyRevenueChronological(t *testing.T) {
	// Dec 2023 must precede Jan 2024 even though "Jan 2024" sorts first
	// as a string.
	orders := []models.Order{
		{ID: 1, Product: "A", Amount: 100, CreatedAt: "2024-01-05T00:00:00Z"},
		{ID: 2, Product: "B", Amount: 50, CreatedAt: "2023-12-20T00:00:00Z"},
		{ID: 3, Product: "C", Amount: 25, CreatedAt: "2023-12-28T00:00:00Z"},
	}

	snapshot := Compute(nil, orders)

	require.Len(t, snapshot.MonthlyRevenue, 2)
	assert.Equal(t, MonthRevenue{Month: "Dec 2023", Revenue: 75}, snapshot.MonthlyRevenue[0])
	assert.Equal(t, MonthRevenue{Month: "Jan 2024", Revenue: 100}, snapshot.MonthlyRevenue[1])
}

func TestCompute_MonthlyRevenueOneEntryPerMonth(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Product: "A", Amount: 10, CreatedAt: "2024-03-01T00:00:00Z"},
		{ID: 2, Product: "B", Amount: 20, CreatedAt: "2024-03-31T23:59:59Z"},
	}

	snapshot := Compute(nil, orders)

	require.Len(t, snapshot.MonthlyRevenue, 1)
	assert.Equal(t, MonthRevenue{Month: "Mar 2024", Revenue: 30}, snapshot.MonthlyRevenue[0])
}

func TestCompute_RecentOrdersJoinAndOrder(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "John Smith", Email: "john@example.com", CreatedAt: "2024-01-01T00:00:00Z"},
	}
	orders := []models.Order{
		{ID: 1, UserID: 1, Product: "A", Amount: 10, CreatedAt: "2024-01-10T00:00:00Z"},
		{ID: 2, UserID: 99, Product: "B", Amount: 20, CreatedAt: "2024-01-12T00:00:00Z"},
	}

	snapshot := Compute(customers, orders)

	require.Len(t, snapshot.RecentOrders, 2)
	assert.Equal(t, 2, snapshot.RecentOrders[0].ID, "newest order first")
	assert.Equal(t, "Unknown", snapshot.RecentOrders[0].UserName)
	assert.Equal(t, "Unknown", snapshot.RecentOrders[0].UserEmail)
	assert.Equal(t, "John Smith", snapshot.RecentOrders[1].UserName)
	assert.Equal(t, "john@example.com", snapshot.RecentOrders[1].UserEmail)
}

func TestCompute_RecentOrdersTruncatedToTen(t *testing.T) {
	orders := make([]models.Order, 15)
	for i := range orders {
		orders[i] = models.Order{
			ID:        i + 1,
			UserID:    1,
			Product:   "A",
			Amount:    1,
			CreatedAt: "2024-01-01T00:00:00Z",
		}
	}

	snapshot := Compute(nil, orders)

	assert.Len(t, snapshot.RecentOrders, 10)
}

func TestCompute_Idempotent(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "A", Email: "a@example.com", CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: 2, Name: "B", Email: "b@example.com", CreatedAt: "2024-01-02T00:00:00Z"},
	}
	orders := []models.Order{
		{ID: 1, UserID: 1, Product: "Widget", Amount: 9.99, CreatedAt: "2024-02-01T10:00:00Z"},
		{ID: 2, UserID: 2, Product: "Gadget", Amount: 19.99, CreatedAt: "2024-02-02T10:00:00Z"},
		{ID: 3, UserID: 1, Product: "Widget", Amount: 9.99, CreatedAt: "2023-12-15T10:00:00Z"},
	}

	first, err := json.Marshal(Compute(customers, orders))
	require.NoError(t, err)
	second, err := json.Marshal(Compute(customers, orders))
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated computation must be byte-identical")
}

func TestSnapshot_JSONSentinel(t *testing.T) {
	raw, err := json.Marshal(Compute(nil, nil))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"averageOrderValue":null`)
}
