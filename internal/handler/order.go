package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taxi/internal/domain"
	"taxi/internal/repository"
	"taxi/internal/service"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderRequest is the HTTP request body for creating and updating an order.
// Creation accepts any of the four statuses explicitly; updates run the
// proposed status through the lifecycle rules.
type OrderRequest struct {
	ClientID    int64     `json:"client_id" binding:"required,gt=0"`
	DriverID    int64     `json:"driver_id" binding:"required,gt=0"`
	DateCreated time.Time `json:"date_created" binding:"required"`
	Status      string    `json:"status" binding:"required,oneof=not_accepted in_progress done cancelled"`
	AddressFrom string    `json:"address_from" binding:"required,min=1"`
	AddressTo   string    `json:"address_to" binding:"required,min=1"`
}

// OrderResponse is the HTTP representation of an order.
type OrderResponse struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"client_id"`
	DriverID    int64  `json:"driver_id"`
	DateCreated string `json:"date_created"`
	Status      string `json:"status"`
	AddressFrom string `json:"address_from"`
	AddressTo   string `json:"address_to"`
}

func orderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID,
		ClientID:    order.ClientID,
		DriverID:    order.DriverID,
		DateCreated: order.DateCreated.Format(time.RFC3339),
		Status:      string(order.Status),
		AddressFrom: order.AddressFrom,
		AddressTo:   order.AddressTo,
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), service.CreateOrderRequest{
		ClientID:    req.ClientID,
		DriverID:    req.DriverID,
		AddressFrom: req.AddressFrom,
		AddressTo:   req.AddressTo,
		DateCreated: req.DateCreated,
		Status:      domain.OrderStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

// UpdateOrder handles PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, service.OrderUpdate{
		ClientID:    req.ClientID,
		DriverID:    req.DriverID,
		AddressFrom: req.AddressFrom,
		AddressTo:   req.AddressTo,
		DateCreated: req.DateCreated,
		Status:      domain.OrderStatus(req.Status),
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}
