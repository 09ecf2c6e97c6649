package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/commerce-ops/dashboard-backend-go/pkg/utils"
)

// GetAnalytics computes and returns a fresh analytics snapshot
func (h *Handlers) GetAnalytics(c *gin.Context) {
	snapshot, err := h.analytics.Snapshot(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("Failed to compute analytics snapshot")
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, snapshot, "Analytics computed successfully")
}
