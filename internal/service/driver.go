package service

import (
	"context"

	"taxi/internal/domain"
	"taxi/internal/redis"
	"taxi/internal/repository"
)

// DriverService handles driver operations.
type DriverService struct {
	driverRepo repository.DriverRepository
	cacheStore *redis.CacheStore
}

// NewDriverService creates a new DriverService.
func NewDriverService(driverRepo repository.DriverRepository, cacheStore *redis.CacheStore) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
		cacheStore: cacheStore,
	}
}

// CreateDriver persists a new driver.
func (s *DriverService) CreateDriver(ctx context.Context, name, car string) (*domain.Driver, error) {
	driver := &domain.Driver{
		Name: name,
		Car:  car,
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetDriver(ctx, &redis.CachedDriver{
			ID:   driver.ID,
			Name: driver.Name,
			Car:  driver.Car,
		})
	}

	return driver, nil
}

// GetDriver retrieves a driver, consulting the cache first.
func (s *DriverService) GetDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetDriver(ctx, id)
		if err == nil && cached != nil {
			return &domain.Driver{ID: cached.ID, Name: cached.Name, Car: cached.Car}, nil
		}
	}

	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetDriver(ctx, &redis.CachedDriver{
			ID:   driver.ID,
			Name: driver.Name,
			Car:  driver.Car,
		})
	}

	return driver, nil
}

// DeleteDriver removes a driver and drops it from the cache.
// Orders referencing the driver keep their row; the FK is nulled by the
// schema's ON DELETE SET NULL.
func (s *DriverService) DeleteDriver(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDriverID
	}

	if err := s.driverRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateDriver(ctx, id)
	}

	return nil
}
