package repository

import (
	"context"

	"taxi/internal/domain"
)

// DriverRepository defines the persistence operations for drivers.
type DriverRepository interface {
	// Create persists a new driver and assigns its identity.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)

	// Delete removes a driver by ID.
	Delete(ctx context.Context, id int64) error
}
