package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taxi/internal/repository"
	"taxi/internal/service"
)

// ClientHandler handles HTTP requests for clients.
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClientRequest is the HTTP request body for creating a client.
// IsVIP is a pointer so an explicit false passes the required check.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required,min=1"`
	IsVIP *bool  `json:"is_vip" binding:"required"`
}

// ClientResponse is the HTTP representation of a client.
type ClientResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	IsVIP bool   `json:"is_vip"`
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req.Name, *req.IsVIP)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClientResponse{
		ID:    client.ID,
		Name:  client.Name,
		IsVIP: client.IsVIP,
	})
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client id"})
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "client not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClientResponse{
		ID:    client.ID,
		Name:  client.Name,
		IsVIP: client.IsVIP,
	})
}

// DeleteClient handles DELETE /clients/:id
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client id"})
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "client not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("client %d deleted", id)})
}

// parseID parses a path parameter into a positive numeric ID.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}
