package domain

import (
	"fmt"
	"time"
)

// OrderStatus represents the current status of an order.
type OrderStatus string

const (
	OrderStatusNotAccepted OrderStatus = "not_accepted"
	OrderStatusInProgress  OrderStatus = "in_progress"
	OrderStatusDone        OrderStatus = "done"
	OrderStatusCancelled   OrderStatus = "cancelled"
)

// ParseOrderStatus converts a raw string into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusNotAccepted, OrderStatusInProgress, OrderStatusDone, OrderStatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

// Terminal reports whether no further transitions are possible from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDone || s == OrderStatusCancelled
}

// Order represents a ride order linking one client and one driver.
// ClientID or DriverID may be 0 when the referenced record was deleted.
type Order struct {
	ID          int64
	ClientID    int64
	DriverID    int64
	AddressFrom string
	AddressTo   string
	DateCreated time.Time
	Status      OrderStatus
}
