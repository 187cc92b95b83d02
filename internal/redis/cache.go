package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	ClientCacheTTL = 5 * time.Minute  // Clients are immutable until deleted
	DriverCacheTTL = 5 * time.Minute  // Drivers are immutable until deleted
	OrderCacheTTL  = 15 * time.Second // Order status changes via updates
)

// Key prefixes
const (
	clientCachePrefix = "cache:client:"
	driverCachePrefix = "cache:driver:"
	orderCachePrefix  = "cache:order:"
)

// CachedClient represents a cached client entity.
type CachedClient struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	IsVIP bool   `json:"is_vip"`
}

// CachedDriver represents a cached driver entity.
type CachedDriver struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Car  string `json:"car"`
}

// CachedOrder represents a cached order entity.
type CachedOrder struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"client_id"`
	DriverID    int64  `json:"driver_id"`
	AddressFrom string `json:"address_from"`
	AddressTo   string `json:"address_to"`
	DateCreated string `json:"date_created"`
	Status      string `json:"status"`
}

// GetClient retrieves a client from cache. A nil result means cache miss.
func (s *CacheStore) GetClient(ctx context.Context, id int64) (*CachedClient, error) {
	data, err := s.client.Get(ctx, clientCachePrefix+formatID(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var client CachedClient
	if err := json.Unmarshal(data, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// SetClient stores a client in cache.
func (s *CacheStore) SetClient(ctx context.Context, client *CachedClient) error {
	data, err := json.Marshal(client)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, clientCachePrefix+formatID(client.ID), data, ClientCacheTTL).Err()
}

// InvalidateClient removes a client from cache.
func (s *CacheStore) InvalidateClient(ctx context.Context, id int64) error {
	return s.client.Del(ctx, clientCachePrefix+formatID(id)).Err()
}

// GetDriver retrieves a driver from cache. A nil result means cache miss.
func (s *CacheStore) GetDriver(ctx context.Context, id int64) (*CachedDriver, error) {
	data, err := s.client.Get(ctx, driverCachePrefix+formatID(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var driver CachedDriver
	if err := json.Unmarshal(data, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

// SetDriver stores a driver in cache.
func (s *CacheStore) SetDriver(ctx context.Context, driver *CachedDriver) error {
	data, err := json.Marshal(driver)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, driverCachePrefix+formatID(driver.ID), data, DriverCacheTTL).Err()
}

// InvalidateDriver removes a driver from cache.
func (s *CacheStore) InvalidateDriver(ctx context.Context, id int64) error {
	return s.client.Del(ctx, driverCachePrefix+formatID(id)).Err()
}

// GetOrder retrieves an order from cache. A nil result means cache miss.
func (s *CacheStore) GetOrder(ctx context.Context, id int64) (*CachedOrder, error) {
	data, err := s.client.Get(ctx, orderCachePrefix+formatID(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var order CachedOrder
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SetOrder stores an order in cache.
func (s *CacheStore) SetOrder(ctx context.Context, order *CachedOrder) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, orderCachePrefix+formatID(order.ID), data, OrderCacheTTL).Err()
}

// InvalidateOrder removes an order from cache.
func (s *CacheStore) InvalidateOrder(ctx context.Context, id int64) error {
	return s.client.Del(ctx, orderCachePrefix+formatID(id)).Err()
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
