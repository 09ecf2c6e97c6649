package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/commerce-ops/dashboard-backend-go/internal/api/handlers"
	"github.com/commerce-ops/dashboard-backend-go/internal/api/middleware"
	"github.com/commerce-ops/dashboard-backend-go/internal/config"
	"github.com/commerce-ops/dashboard-backend-go/internal/database"
	"github.com/commerce-ops/dashboard-backend-go/pkg/utils"
)

// NewRouter creates and configures the main HTTP router
func NewRouter(cfg *config.Config, repos *database.Repositories, logger *logrus.Logger) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(100, 200)
	router.Use(rateLimiter.RateLimitMiddleware())

	h := handlers.NewHandlers(cfg, repos, logger)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/analytics", h.GetAnalytics)

		customers := api.Group("/customers")
		{
			customers.GET("", h.GetCustomers)
			customers.GET("/:id", h.GetCustomer)
			customers.GET("/:id/orders", h.GetCustomerOrders)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		utils.SendError(c, http.StatusNotFound, "Endpoint not found")
	})

	return router
}
