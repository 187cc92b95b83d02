package postgres

import (
	"context"
	"database/sql"
	"errors"

	"taxi/internal/domain"
	"taxi/internal/repository"
)

// DriverRepository is a PostgreSQL implementation of repository.DriverRepository.
type DriverRepository struct {
	q Querier
}

// NewDriverRepository creates a new PostgreSQL driver repository.
func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{q: db}
}

// Create persists a new driver and fills in the assigned ID.
func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	query := `INSERT INTO drivers (name, car) VALUES ($1, $2) RETURNING id`

	err := r.q.QueryRowContext(ctx, query, driver.Name, driver.Car).Scan(&driver.ID)
	return translateError(err)
}

// GetByID retrieves a driver by ID.
func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	query := `SELECT id, name, car FROM drivers WHERE id = $1`

	var driver domain.Driver
	err := r.q.QueryRowContext(ctx, query, id).Scan(&driver.ID, &driver.Name, &driver.Car)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// Delete removes a driver by ID.
func (r *DriverRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM drivers WHERE id = $1`

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
