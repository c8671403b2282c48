package repository

import (
	"context"
	"sync"

	"kirana-connect/internal/data/entity"

	"go.uber.org/zap"
)

type StoreRepository interface {
	FindAll(ctx context.Context) ([]*entity.Store, error)
	FindByID(ctx context.Context, id string) (*entity.Store, error)
	UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error
}

type storeRepository struct {
	mu     sync.RWMutex
	stores map[string]*entity.Store
	order  []string // stable listing order
	log    *zap.Logger
}

func NewStoreRepository(seed []entity.Store, log *zap.Logger) StoreRepository {
	sr := &storeRepository{
		stores: make(map[string]*entity.Store, len(seed)),
		log:    log,
	}
	for i := range seed {
		store := seed[i]
		sr.stores[store.ID] = &store
		sr.order = append(sr.order, store.ID)
	}
	return sr
}

func (sr *storeRepository) FindAll(ctx context.Context) ([]*entity.Store, error) {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	result := make([]*entity.Store, 0, len(sr.order))
	for _, id := range sr.order {
		store := *sr.stores[id]
		result = append(result, &store)
	}
	return result, nil
}

func (sr *storeRepository) FindByID(ctx context.Context, id string) (*entity.Store, error) {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	store, exists := sr.stores[id]
	if !exists {
		return nil, nil
	}
	copied := *store
	return &copied, nil
}

// UpdateRating overwrites the running average and review count
func (sr *storeRepository) UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	store, exists := sr.stores[id]
	if !exists {
		return nil
	}

	store.Rating = rating
	store.ReviewCount = reviewCount

	sr.log.Debug("Store rating updated",
		zap.String("store_id", id),
		zap.Float64("rating", rating),
		zap.Int("review_count", reviewCount),
	)
	return nil
}
