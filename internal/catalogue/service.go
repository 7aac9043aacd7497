package catalogue

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service fronts the repository with a cache. Cache failures are logged and
// absorbed; the repository stays the source of truth.
type Service struct {
	repo  Repository
	cache ProductCache
	log   *zap.Logger
	sfg   singleflight.Group // Prevents cache stampede
}

func NewService(repo Repository, cache ProductCache, log *zap.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Lookup returns the product snapshot for the given id, or ErrProductNotFound.
func (s *Service) Lookup(ctx context.Context, id string) (*Product, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {

		product, err := s.cache.Get(ctx, id)
		if err == nil {
			return product, nil // product is in cache
		}

		if !errors.Is(err, ErrCacheMiss) {
			s.log.Warn("cache get error", zap.String("product_id", id), zap.Error(err))
		}

		product, errGet := s.repo.GetProduct(ctx, id)
		if errGet != nil {
			return nil, errGet // ErrProductNotFound included
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), id, product)
			if errSet != nil {
				s.log.Warn("cache set error", zap.String("product_id", id), zap.Error(errSet))
			}
		}()

		return product, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*Product), nil
}
