package repository

import (
	"context"
	"sync"

	"kirana-connect/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartRepository interface {
	Items(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)
	Save(ctx context.Context, userID uuid.UUID, items []entity.CartItem) error
	Clear(ctx context.Context, userID uuid.UUID) error
	Subscriptions(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)
	AddSubscription(ctx context.Context, userID uuid.UUID, item entity.CartItem) (bool, error)
}

type cartRepository struct {
	mu            sync.RWMutex
	carts         map[uuid.UUID][]entity.CartItem
	subscriptions map[uuid.UUID][]entity.CartItem
	log           *zap.Logger
}

func NewCartRepository(log *zap.Logger) CartRepository {
	return &cartRepository{
		carts:         make(map[uuid.UUID][]entity.CartItem),
		subscriptions: make(map[uuid.UUID][]entity.CartItem),
		log:           log,
	}
}

func (cr *cartRepository) Items(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	items := make([]entity.CartItem, len(cr.carts[userID]))
	copy(items, cr.carts[userID])
	return items, nil
}

func (cr *cartRepository) Save(ctx context.Context, userID uuid.UUID, items []entity.CartItem) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	copied := make([]entity.CartItem, len(items))
	copy(copied, items)
	cr.carts[userID] = copied
	return nil
}

func (cr *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	delete(cr.carts, userID)
	return nil
}

func (cr *cartRepository) Subscriptions(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	subs := make([]entity.CartItem, len(cr.subscriptions[userID]))
	copy(subs, cr.subscriptions[userID])
	return subs, nil
}

// AddSubscription is a no-op returning false when the product already has one
func (cr *cartRepository) AddSubscription(ctx context.Context, userID uuid.UUID, item entity.CartItem) (bool, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	for _, existing := range cr.subscriptions[userID] {
		if existing.Product.ID == item.Product.ID {
			return false, nil
		}
	}

	cr.subscriptions[userID] = append(cr.subscriptions[userID], item)
	return true, nil
}
