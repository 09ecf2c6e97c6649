package main

import (
	"context"
	"fmt"
	"os"

	"github.com/commerce-ops/dashboard-backend-go/internal/config"
	"github.com/commerce-ops/dashboard-backend-go/internal/database"
	"github.com/commerce-ops/dashboard-backend-go/internal/ingest"
	"github.com/commerce-ops/dashboard-backend-go/pkg/logger"
)

// Seeds the database from the CSV files named in config. Existing rows
// with the same IDs cause insert failures, so this is a fresh-database
// tool, not an upsert.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	repos := database.NewRepositories(db)
	ctx := context.Background()

	usersFile, err := os.Open(cfg.Ingest.UsersCSV)
	if err != nil {
		log.Fatal("Failed to open users CSV: ", err)
	}
	defer usersFile.Close()

	customers, err := ingest.LoadCustomers(usersFile)
	if err != nil {
		log.Fatal("Failed to parse users CSV: ", err)
	}

	for i := range customers {
		if err := repos.Customer.Create(ctx, &customers[i]); err != nil {
			log.Fatalf("Failed to insert customer %d: %v", customers[i].ID, err)
		}
	}
	log.Infof("Seeded %d customers", len(customers))

	ordersFile, err := os.Open(cfg.Ingest.OrdersCSV)
	if err != nil {
		log.Fatal("Failed to open orders CSV: ", err)
	}
	defer ordersFile.Close()

	orders, err := ingest.LoadOrders(ordersFile)
	if err != nil {
		log.Fatal("Failed to parse orders CSV: ", err)
	}

	for i := range orders {
		if err := repos.Order.Create(ctx, &orders[i]); err != nil {
			log.Fatalf("Failed to insert order %d: %v", orders[i].ID, err)
		}
	}
	log.Infof("Seeded %d orders", len(orders))
}
