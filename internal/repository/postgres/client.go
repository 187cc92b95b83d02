package postgres

import (
	"context"
	"database/sql"
	"errors"

	"taxi/internal/domain"
	"taxi/internal/repository"
)

// ClientRepository is a PostgreSQL implementation of repository.ClientRepository.
type ClientRepository struct {
	q Querier
}

// NewClientRepository creates a new PostgreSQL client repository.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{q: db}
}

// Create persists a new client and fills in the assigned ID.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `INSERT INTO clients (name, is_vip) VALUES ($1, $2) RETURNING id`

	err := r.q.QueryRowContext(ctx, query, client.Name, client.IsVIP).Scan(&client.ID)
	return translateError(err)
}

// GetByID retrieves a client by ID.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `SELECT id, name, is_vip FROM clients WHERE id = $1`

	var client domain.Client
	err := r.q.QueryRowContext(ctx, query, id).Scan(&client.ID, &client.Name, &client.IsVIP)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// Delete removes a client by ID.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query, id)
	if err != nil {
		return translateError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
