package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi/internal/repository"
	"taxi/internal/service"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// CreateDriverRequest is the HTTP request body for creating a driver.
type CreateDriverRequest struct {
	Name string `json:"name" binding:"required,min=2"`
	Car  string `json:"car" binding:"required,min=2"`
}

// DriverResponse is the HTTP representation of a driver.
type DriverResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Car  string `json:"car"`
}

// CreateDriver handles POST /drivers
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.driverService.CreateDriver(c.Request.Context(), req.Name, req.Car)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DriverResponse{
		ID:   driver.ID,
		Name: driver.Name,
		Car:  driver.Car,
	})
}

// GetDriver handles GET /drivers/:id
func (h *DriverHandler) GetDriver(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid driver id"})
		return
	}

	driver, err := h.driverService.GetDriver(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "driver not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DriverResponse{
		ID:   driver.ID,
		Name: driver.Name,
		Car:  driver.Car,
	})
}

// DeleteDriver handles DELETE /drivers/:id
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid driver id"})
		return
	}

	if err := h.driverService.DeleteDriver(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "driver not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("driver %d deleted", id)})
}
