package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/commerce-ops/dashboard-backend-go/pkg/utils"
)

// Health returns the health status of the service
func (h *Handlers) Health(c *gin.Context) {
	utils.SendSuccess(c, gin.H{
		"status":    "healthy",
		"service":   "dashboard-backend-go",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, "Customer API is running")
}
