package service

import (
	"context"

	"taxi/internal/domain"
	"taxi/internal/redis"
	"taxi/internal/repository"
)

// ClientService handles client operations.
type ClientService struct {
	clientRepo repository.ClientRepository
	cacheStore *redis.CacheStore
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo repository.ClientRepository, cacheStore *redis.CacheStore) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		cacheStore: cacheStore,
	}
}

// CreateClient persists a new client.
func (s *ClientService) CreateClient(ctx context.Context, name string, isVIP bool) (*domain.Client, error) {
	client := &domain.Client{
		Name:  name,
		IsVIP: isVIP,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetClient(ctx, &redis.CachedClient{
			ID:    client.ID,
			Name:  client.Name,
			IsVIP: client.IsVIP,
		})
	}

	return client, nil
}

// GetClient retrieves a client, consulting the cache first.
func (s *ClientService) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	if id <= 0 {
		return nil, ErrInvalidClientID
	}

	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetClient(ctx, id)
		if err == nil && cached != nil {
			return &domain.Client{ID: cached.ID, Name: cached.Name, IsVIP: cached.IsVIP}, nil
		}
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetClient(ctx, &redis.CachedClient{
			ID:    client.ID,
			Name:  client.Name,
			IsVIP: client.IsVIP,
		})
	}

	return client, nil
}

// DeleteClient removes a client and drops it from the cache.
func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidClientID
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidateClient(ctx, id)
	}

	return nil
}
