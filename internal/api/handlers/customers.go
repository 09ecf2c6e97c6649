package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/commerce-ops/dashboard-backend-go/internal/core/customers"
	"github.com/commerce-ops/dashboard-backend-go/pkg/utils"
)

// GetCustomers lists customers with pagination, search, and sorting.
// Query params: page, limit, search, sort, order.
func (h *Handlers) GetCustomers(c *gin.Context) {
	params := customers.ListParams{
		Page:   c.Query("page"),
		Limit:  c.Query("limit"),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
	}

	result, err := h.customers.List(c.Request.Context(), params)
	if err != nil {
		h.log.WithError(err).Error("Failed to list customers")
		utils.SendAppError(c, err)
		return
	}

	message := fmt.Sprintf("Retrieved %d customers", len(result.Customers))
	utils.SendSuccessWithPagination(c, result.Customers, message, result.Pagination)
}

// GetCustomer returns a single customer with order statistics
func (h *Handlers) GetCustomer(c *gin.Context) {
	id, ok := parseCustomerID(c)
	if !ok {
		return
	}

	customer, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, customer, fmt.Sprintf("Customer %d retrieved successfully", id))
}

// GetCustomerOrders returns all orders for one customer
func (h *Handlers) GetCustomerOrders(c *gin.Context) {
	id, ok := parseCustomerID(c)
	if !ok {
		return
	}

	orders, err := h.customers.OrdersForCustomer(c.Request.Context(), id)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, orders, fmt.Sprintf("Orders for customer %d retrieved successfully", id))
}

// parseCustomerID reads the :id path param. A non-integer or non-positive
// value is rejected before any service call.
func parseCustomerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.SendError(c, http.StatusBadRequest, "Invalid customer ID. ID must be a positive integer.")
		return 0, false
	}
	return id, true
}
