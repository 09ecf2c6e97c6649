package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/commerce-ops/dashboard-backend-go/internal/database/models"
)

// ParseCSV splits delimited text into rows of trimmed fields. Quoting is
// deliberately minimal: a double quote toggles an in-quotes state and a
// comma inside quotes is literal. Quote characters themselves are never
// part of the field value.
func ParseCSV(text string) [][]string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	rows := make([][]string, 0, len(lines))

	for _, line := range lines {
		var fields []string
		var current strings.Builder
		inQuotes := false

		for _, ch := range line {
			switch {
			case ch == '"':
				inQuotes = !inQuotes
			case ch == ',' && !inQuotes:
				fields = append(fields, strings.TrimSpace(current.String()))
				current.Reset()
			default:
				current.WriteRune(ch)
			}
		}
		fields = append(fields, strings.TrimSpace(current.String()))
		rows = append(rows, fields)
	}

	return rows
}

// LoadCustomers parses customer records from CSV with columns
// id,name,email,created_at. The header row is skipped positionally.
func LoadCustomers(r io.Reader) ([]models.Customer, error) {
	rows, err := dataRows(r, 4)
	if err != nil {
		return nil, err
	}

	customers := make([]models.Customer, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid customer id %q", i+2, row[0])
		}
		customers = append(customers, models.Customer{
			ID:        id,
			Name:      row[1],
			Email:     row[2],
			CreatedAt: row[3],
		})
	}

	return customers, nil
}

// LoadOrders parses order records from CSV with columns
// id,user_id,amount,product,created_at.
func LoadOrders(r io.Reader) ([]models.Order, error) {
	rows, err := dataRows(r, 5)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid order id %q", i+2, row[0])
		}
		userID, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid user id %q", i+2, row[1])
		}
		amount, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid amount %q", i+2, row[2])
		}
		orders = append(orders, models.Order{
			ID:        id,
			UserID:    userID,
			Amount:    amount,
			Product:   row[3],
			CreatedAt: row[4],
		})
	}

	return orders, nil
}

// dataRows reads, parses, drops the header, and checks column counts
func dataRows(r io.Reader, want int) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV input: %w", err)
	}

	rows := ParseCSV(string(raw))
	if len(rows) < 1 {
		return nil, fmt.Errorf("CSV input is empty")
	}

	data := rows[1:]
	for i, row := range data {
		if len(row) != want {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", i+2, want, len(row))
		}
	}

	return data, nil
}
