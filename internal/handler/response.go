package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi/internal/repository"
	"taxi/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	if code == http.StatusInternalServerError {
		// Do not leak storage internals to the caller.
		_ = c.Error(err)
		c.JSON(code, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Duplicate name on create
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict

	// Validation and lifecycle rejections - Bad Request
	case errors.Is(err, repository.ErrInvalidReference),
		errors.Is(err, service.ErrOrderCompleted),
		errors.Is(err, service.ErrOrderInProgress),
		errors.Is(err, service.ErrOrderStatusChange),
		errors.Is(err, service.ErrInvalidClientID),
		errors.Is(err, service.ErrInvalidDriverID),
		errors.Is(err, service.ErrInvalidOrderID),
		errors.Is(err, service.ErrInvalidOrderStatus):
		return http.StatusBadRequest

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
