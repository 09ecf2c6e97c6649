package sqlite

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/models"
	"github.com/commerce-ops/dashboard-backend-go/internal/database/repositories"
	apperrors "github.com/commerce-ops/dashboard-backend-go/pkg/errors"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second connection would get its own empty in-memory database.
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE users (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL
		);
		CREATE TABLE orders (
			id INTEGER PRIMARY KEY,
			user_id INTEGER NOT NULL,
			amount REAL NOT NULL,
			product TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
	`

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func seedCustomers(t *testing.T, db *sqlx.DB) {
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customers := []models.Customer{
		{ID: 1, Name: "John Smith", Email: "john.smith@email.com", CreatedAt: "2024-01-15T10:30:00Z"},
		{ID: 2, Name: "Sarah Johnson", Email: "sarah.johnson@email.com", CreatedAt: "2024-01-16T14:20:00Z"},
		{ID: 3, Name: "Michael Brown", Email: "michael.brown@email.com", CreatedAt: "2024-01-17T09:15:00Z"},
	}
	for i := range customers {
		if err := repo.Create(ctx, &customers[i]); err != nil {
			t.Fatalf("Failed to seed customer: %v", err)
		}
	}
}

func TestCustomerRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	seedCustomers(t, db)

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer, err := repo.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get customer: %v", err)
	}

	if customer.Name != "Sarah Johnson" {
		t.Errorf("Expected name Sarah Johnson, got %s", customer.Name)
	}
	if customer.Email != "sarah.johnson@email.com" {
		t.Errorf("Expected email sarah.johnson@email.com, got %s", customer.Email)
	}
}

func TestCustomerRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	seedCustomers(t, db)

	repo := NewCustomerRepository(db)

	_, err := repo.GetByID(context.Background(), 99999)
	if err == nil {
		t.Fatal("Expected error for missing customer")
	}
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Expected not-found kind, got %v", apperrors.KindOf(err))
	}
}

func TestCustomerRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	seedCustomers(t, db)

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, 1)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("Expected customer 1 to exist")
	}

	exists, err = repo.Exists(ctx, 42)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("Expected customer 42 to not exist")
	}
}

func TestCustomerRepository_List_SearchCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedCustomers(t, db)

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	for _, term := range []string{"john", "SMITH", "John Smith"} {
		rows, total, err := repo.List(ctx, repositories.ListQuery{
			Search:    term,
			SortField: repositories.SortByCreatedAt,
			Limit:     10,
		})
		if err != nil {
			t.Fatalf("List failed for %q: %v", term, err)
		}

		found := false
		for _, row := range rows {
			if row.Name == "John Smith" {
				found = true
			}
		}
		if !found {
			t.Errorf("Search %q: expected John Smith in results", term)
		}
		if total < 1 {
			t.Errorf("Search %q: expected total >= 1, got %d", term, total)
		}
	}
}

func TestCustomerRepository_List_SearchMatchesEmail(t *testing.T) {
	db := setupTestDB(t)
	seedCustomers(t, db)

	repo := NewCustomerRepository(db)

	rows, total, err := repo.List(context.Background(), repositories.ListQuery{
		Search:    "sarah.johnson@",
		SortField: repositories.SortByCreatedAt,
		Limit:     10,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("Expected total 1, got %d", total)
	}
	if rows[0].ID != 2 {
		t.Errorf("Expected customer 2, got %d", rows[0].ID)
	}
}

func TestCustomerRepository_List_SortAndRange(t *testing.T) {
	db := setupTestDB(t)
	seedCustomers(t, db)

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	rows, total, err := repo.List(ctx, repositories.ListQuery{
		SortField: repositories.SortByName,
		Ascending: true,
		Limit:     2,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "John Smith" || rows[1].Name != "Michael Brown" {
		t.Errorf("Unexpected ascending name order: %s, %s", rows[0].Name, rows[1].Name)
	}

	rows, _, err = repo.List(ctx, repositories.ListQuery{
		SortField: repositories.SortByName,
		Ascending: true,
		Offset:    2,
		Limit:     2,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Sarah Johnson" {
		t.Errorf("Unexpected second page: %+v", rows)
	}
}

func TestCustomerRepository_List_SortByOrderCount(t *testing.T) {
	db := setupTestDB(t)
	seedCustomers(t, db)

	orderRepo := NewOrderRepository(db)
	ctx := context.Background()

	orders := []models.Order{
		{ID: 1, UserID: 2, Amount: 10, Product: "A", CreatedAt: "2024-02-01T00:00:00Z"},
		{ID: 2, UserID: 2, Amount: 20, Product: "B", CreatedAt: "2024-02-02T00:00:00Z"},
		{ID: 3, UserID: 1, Amount: 30, Product: "C", CreatedAt: "2024-02-03T00:00:00Z"},
	}
	for i := range orders {
		if err := orderRepo.Create(ctx, &orders[i]); err != nil {
			t.Fatalf("Failed to seed order: %v", err)
		}
	}

	repo := NewCustomerRepository(db)
	rows, total, err := repo.List(ctx, repositories.ListQuery{
		SortField: repositories.SortByOrderCount,
		Ascending: false,
		Limit:     10,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
	if rows[0].ID != 2 {
		t.Errorf("Expected customer 2 (most orders) first, got %d", rows[0].ID)
	}
	if rows[2].ID != 3 {
		t.Errorf("Expected customer 3 (no orders) last, got %d", rows[2].ID)
	}
}

func TestCustomerRepository_List_EmptyResult(t *testing.T) {
	db := setupTestDB(t)
	seedCustomers(t, db)

	repo := NewCustomerRepository(db)

	rows, total, err := repo.List(context.Background(), repositories.ListQuery{
		Search:    "no-such-customer",
		SortField: repositories.SortByCreatedAt,
		Limit:     10,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected total 0, got %d", total)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
}
