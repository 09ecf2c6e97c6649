package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/commerce-ops/dashboard-backend-go/pkg/errors"
)

// Response is the standard API envelope. Data is always present, null on
// failure, so clients never branch on field absence.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Pagination interface{} `json:"pagination,omitempty"`
}

// SendSuccess sends a successful response
func SendSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// SendSuccessWithPagination sends a successful paginated response
func SendSuccessWithPagination(c *gin.Context, data interface{}, message string, pagination interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Message:    message,
		Pagination: pagination,
	})
}

// SendError sends an error response with the given status code
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Data:    nil,
		Message: message,
	})
}

// SendAppError maps an error to a response by its kind, never by message text
func SendAppError(c *gin.Context, err error) {
	SendError(c, apperrors.HTTPStatus(err), err.Error())
}
