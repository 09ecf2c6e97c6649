package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/commerce-ops/dashboard-backend-go/pkg/utils"
)

// RecoveryMiddleware converts panics into a logged 500 envelope so a
// single bad request never takes the process down
func RecoveryMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"client_ip": c.ClientIP(),
			"panic":     recovered,
		}).Error("Panic recovered in request handler")

		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	})
}
