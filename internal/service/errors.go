package service

import "errors"

var (
	// ErrOrderCompleted is returned when updating an order that is already
	// done or cancelled.
	ErrOrderCompleted = errors.New("cannot modify a completed order")

	// ErrOrderInProgress is returned when an in-progress order update would
	// reassign date_created, client and driver all at once.
	ErrOrderInProgress = errors.New("cannot modify an order in progress")

	// ErrOrderStatusChange is returned when the proposed status is not
	// reachable from the order's current status.
	ErrOrderStatusChange = errors.New("cannot change order status to the requested value")

	// ErrInvalidClientID is returned when a client ID is not a positive integer.
	ErrInvalidClientID = errors.New("invalid client id")

	// ErrInvalidDriverID is returned when a driver ID is not a positive integer.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrInvalidOrderID is returned when an order ID is not a positive integer.
	ErrInvalidOrderID = errors.New("invalid order id")

	// ErrInvalidOrderStatus is returned when a status value is outside the
	// fixed enumeration.
	ErrInvalidOrderStatus = errors.New("invalid order status")
)
