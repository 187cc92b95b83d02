package repository

import (
	"context"

	"taxi/internal/domain"
)

// OrderRepository defines the persistence operations for orders.
// Orders are never deleted; they are created, read and updated.
type OrderRepository interface {
	// Create persists a new order and assigns its identity.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by ID.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// Update replaces all mutable fields of an existing order.
	Update(ctx context.Context, order *domain.Order) error
}
