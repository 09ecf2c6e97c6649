package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/commerce-ops/dashboard-backend-go/internal/config"
	"github.com/commerce-ops/dashboard-backend-go/internal/core/analytics"
	"github.com/commerce-ops/dashboard-backend-go/internal/core/customers"
	"github.com/commerce-ops/dashboard-backend-go/internal/database"
)

// Handlers holds all HTTP handlers and their dependencies
type Handlers struct {
	cfg       *config.Config
	customers *customers.Service
	analytics *analytics.Service
	log       *logrus.Logger
}

// NewHandlers creates a new handlers instance
func NewHandlers(cfg *config.Config, repos *database.Repositories, log *logrus.Logger) *Handlers {
	return &Handlers{
		cfg:       cfg,
		customers: customers.NewService(repos.Customer, repos.Order, log),
		analytics: analytics.NewService(repos.Customer, repos.Order, log),
		log:       log,
	}
}
