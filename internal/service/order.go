package service

import (
	"context"
	"database/sql"
	"time"

	"taxi/internal/domain"
	"taxi/internal/redis"
	"taxi/internal/repository"
	"taxi/internal/repository/postgres"
)

// OrderService handles order operations. Updates are gated by the order
// lifecycle rules in ApplyOrderUpdate and run inside a transaction when a
// database handle is available.
type OrderService struct {
	db         *sql.DB
	orderRepo  repository.OrderRepository
	cacheStore *redis.CacheStore
}

// NewOrderService creates a new OrderService.
func NewOrderService(db *sql.DB, orderRepo repository.OrderRepository, cacheStore *redis.CacheStore) *OrderService {
	return &OrderService{
		db:         db,
		orderRepo:  orderRepo,
		cacheStore: cacheStore,
	}
}

// CreateOrderRequest contains the parameters for creating an order.
type CreateOrderRequest struct {
	ClientID    int64
	DriverID    int64
	AddressFrom string
	AddressTo   string
	DateCreated time.Time
	Status      domain.OrderStatus
}

// CreateOrder persists a new order with the caller-supplied status.
// The status is taken as-is; the transition table only constrains updates.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if req.ClientID <= 0 {
		return nil, ErrInvalidClientID
	}
	if req.DriverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if _, err := domain.ParseOrderStatus(string(req.Status)); err != nil {
		return nil, ErrInvalidOrderStatus
	}

	order := &domain.Order{
		ClientID:    req.ClientID,
		DriverID:    req.DriverID,
		AddressFrom: req.AddressFrom,
		AddressTo:   req.AddressTo,
		DateCreated: req.DateCreated,
		Status:      req.Status,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetOrder(ctx, cachedOrder(order))
	}

	return order, nil
}

// GetOrder retrieves an order, consulting the cache first.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetOrder(ctx, id)
		if err == nil && cached != nil {
			if order, ok := orderFromCache(cached); ok {
				return order, nil
			}
		}
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetOrder(ctx, cachedOrder(order))
	}

	return order, nil
}

// UpdateOrder applies a full-field update to an order after the lifecycle
// rules admit it. The read-check-write sequence runs inside a transaction
// so a rejected or failed update leaves no partial write behind.
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, upd OrderUpdate) (*domain.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}
	if _, err := domain.ParseOrderStatus(string(upd.Status)); err != nil {
		return nil, ErrInvalidOrderStatus
	}

	var order *domain.Order
	var err error

	if s.db != nil {
		order, err = s.updateOrderTx(ctx, id, upd)
	} else {
		order, err = s.updateOrderPlain(ctx, id, upd)
	}
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateOrder(ctx, id)
	}

	return order, nil
}

func (s *OrderService) updateOrderTx(ctx context.Context, id int64, upd OrderUpdate) (*domain.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txOrderRepo := postgres.NewOrderRepositoryWithTx(tx)

	order, err := txOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = ApplyOrderUpdate(order, upd); err != nil {
		return nil, err
	}

	if err = txOrderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) updateOrderPlain(ctx context.Context, id int64, upd OrderUpdate) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ApplyOrderUpdate(order, upd); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func cachedOrder(order *domain.Order) *redis.CachedOrder {
	return &redis.CachedOrder{
		ID:          order.ID,
		ClientID:    order.ClientID,
		DriverID:    order.DriverID,
		AddressFrom: order.AddressFrom,
		AddressTo:   order.AddressTo,
		DateCreated: order.DateCreated.Format(time.RFC3339Nano),
		Status:      string(order.Status),
	}
}

func orderFromCache(cached *redis.CachedOrder) (*domain.Order, bool) {
	dateCreated, err := time.Parse(time.RFC3339Nano, cached.DateCreated)
	if err != nil {
		return nil, false
	}
	status, err := domain.ParseOrderStatus(cached.Status)
	if err != nil {
		return nil, false
	}
	return &domain.Order{
		ID:          cached.ID,
		ClientID:    cached.ClientID,
		DriverID:    cached.DriverID,
		AddressFrom: cached.AddressFrom,
		AddressTo:   cached.AddressTo,
		DateCreated: dateCreated,
		Status:      status,
	}, true
}
