package service

import (
	"time"

	"taxi/internal/domain"
)

// statusChain maps a current order status to the set of statuses reachable
// from it. Terminal statuses (done, cancelled) have no entry.
var statusChain = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderStatusNotAccepted: {domain.OrderStatusInProgress, domain.OrderStatusCancelled},
	domain.OrderStatusInProgress:  {domain.OrderStatusCancelled, domain.OrderStatusDone},
}

// OrderUpdate carries the full set of proposed order fields.
type OrderUpdate struct {
	ClientID    int64
	DriverID    int64
	AddressFrom string
	AddressTo   string
	DateCreated time.Time
	Status      domain.OrderStatus
}

// ApplyOrderUpdate decides whether the proposed update is admissible given
// the order's current status and, if so, applies all fields to the order.
//
// The rules run in a fixed sequence: terminal orders reject everything;
// an in-progress order rejects an update that reassigns date_created,
// client and driver simultaneously (a change to only one or two of those
// fields passes this rule; kept verbatim from the system being replaced,
// see DESIGN.md); finally the proposed status must be reachable from the
// current one in the transition table.
func ApplyOrderUpdate(order *domain.Order, upd OrderUpdate) error {
	if order.Status.Terminal() {
		return ErrOrderCompleted
	}

	if order.Status == domain.OrderStatusInProgress &&
		!upd.DateCreated.Equal(order.DateCreated) &&
		upd.ClientID != order.ClientID &&
		upd.DriverID != order.DriverID {
		return ErrOrderInProgress
	}

	allowed, ok := statusChain[order.Status]
	if !ok {
		// Unreachable: every non-terminal status has a table entry.
		return ErrOrderStatusChange
	}
	if !containsStatus(allowed, upd.Status) {
		return ErrOrderStatusChange
	}

	order.ClientID = upd.ClientID
	order.DriverID = upd.DriverID
	order.AddressFrom = upd.AddressFrom
	order.AddressTo = upd.AddressTo
	order.DateCreated = upd.DateCreated
	order.Status = upd.Status

	return nil
}

func containsStatus(set []domain.OrderStatus, s domain.OrderStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
