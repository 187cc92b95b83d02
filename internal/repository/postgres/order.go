package postgres

import (
	"context"
	"database/sql"
	"errors"

	"taxi/internal/domain"
	"taxi/internal/repository"
)

// OrderRepository is a PostgreSQL implementation of repository.OrderRepository.
type OrderRepository struct {
	q Querier
}

// NewOrderRepository creates a new PostgreSQL order repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{q: db}
}

// NewOrderRepositoryWithTx creates an order repository using a transaction.
func NewOrderRepositoryWithTx(tx *sql.Tx) *OrderRepository {
	return &OrderRepository{q: tx}
}

// Create persists a new order and fills in the assigned ID.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (client_id, driver_id, address_from, address_to, date_created, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.q.QueryRowContext(ctx, query,
		nullID(order.ClientID),
		nullID(order.DriverID),
		order.AddressFrom,
		order.AddressTo,
		order.DateCreated,
		order.Status,
	).Scan(&order.ID)
	return translateError(err)
}

// GetByID retrieves an order by ID.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, client_id, driver_id, address_from, address_to, date_created, status
		FROM orders WHERE id = $1
	`

	var order domain.Order
	var clientID, driverID sql.NullInt64

	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&clientID,
		&driverID,
		&order.AddressFrom,
		&order.AddressTo,
		&order.DateCreated,
		&order.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	// FKs are nulled when the referenced client or driver is deleted.
	order.ClientID = clientID.Int64
	order.DriverID = driverID.Int64

	return &order, nil
}

// Update replaces all mutable fields of an existing order.
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET client_id = $1, driver_id = $2, address_from = $3, address_to = $4, date_created = $5, status = $6
		WHERE id = $7
	`

	result, err := r.q.ExecContext(ctx, query,
		nullID(order.ClientID),
		nullID(order.DriverID),
		order.AddressFrom,
		order.AddressTo,
		order.DateCreated,
		order.Status,
		order.ID,
	)
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

// nullID converts a zero ID into a SQL NULL.
func nullID(id int64) sql.NullInt64 {
	if id == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: id, Valid: true}
}
