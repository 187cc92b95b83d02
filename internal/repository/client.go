package repository

import (
	"context"

	"taxi/internal/domain"
)

// ClientRepository defines the persistence operations for clients.
type ClientRepository interface {
	// Create persists a new client and assigns its identity.
	Create(ctx context.Context, client *domain.Client) error

	// GetByID retrieves a client by ID.
	GetByID(ctx context.Context, id int64) (*domain.Client, error)

	// Delete removes a client by ID.
	Delete(ctx context.Context, id int64) error
}
