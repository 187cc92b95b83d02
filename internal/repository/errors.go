package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when a unique constraint is violated,
	// e.g. creating a client or driver with a name already in use.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidReference is returned when an order refers to a client or
	// driver that does not exist.
	ErrInvalidReference = errors.New("referenced entity does not exist")
)
