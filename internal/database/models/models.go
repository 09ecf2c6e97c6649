package models

// Customer represents a customer record. Timestamps are stored and served
// as ISO-8601 strings; the store owns their format, the engine only parses
// them when it needs to order by time.
type Customer struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	CreatedAt string `json:"created_at" db:"created_at"`
}

// Order represents a single order placed by a customer
type Order struct {
	ID        int     `json:"id" db:"id"`
	UserID    int     `json:"user_id" db:"user_id"`
	Amount    float64 `json:"amount" db:"amount"`
	Product   string  `json:"product" db:"product"`
	CreatedAt string  `json:"created_at" db:"created_at"`
}

// CustomerStats holds per-customer order statistics, computed on read and
// never persisted. LastOrderDate is nil when the customer has no orders.
type CustomerStats struct {
	OrderCount    int     `json:"order_count"`
	TotalSpent    float64 `json:"total_spent"`
	LastOrderDate *string `json:"last_order_date"`
}

// CustomerWithStats is a customer row enriched with its order statistics
type CustomerWithStats struct {
	Customer
	CustomerStats
}

// Pagination describes the page window of a listing response
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
