package repository

import (
	"context"
	"sync"

	"kirana-connect/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	FindAll(ctx context.Context) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
	MarkRated(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type orderRepository struct {
	mu      sync.RWMutex
	orders  map[string]*entity.Order
	history []string // most-recent-first
	log     *zap.Logger
}

func NewOrderRepository(log *zap.Logger) OrderRepository {
	return &orderRepository{
		orders: make(map[string]*entity.Order),
		log:    log,
	}
}

// Create prepends the order to the history, most recent first
func (or *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	or.mu.Lock()
	defer or.mu.Unlock()

	copied := cloneOrder(order)
	or.orders[copied.ID] = copied
	or.history = append([]string{copied.ID}, or.history...)

	return nil
}

func (or *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	or.mu.RLock()
	defer or.mu.RUnlock()

	order, exists := or.orders[id]
	if !exists {
		return nil, nil
	}
	return cloneOrder(order), nil
}

func (or *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	or.mu.RLock()
	defer or.mu.RUnlock()

	var result []*entity.Order
	for _, id := range or.history {
		if or.orders[id].UserID == userID {
			result = append(result, cloneOrder(or.orders[id]))
		}
	}
	return result, nil
}

func (or *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	or.mu.RLock()
	defer or.mu.RUnlock()

	result := make([]*entity.Order, 0, len(or.history))
	for _, id := range or.history {
		result = append(result, cloneOrder(or.orders[id]))
	}
	return result, nil
}

// UpdateStatus overwrites the status in place. Unknown ids are a no-op; the
// forward-only invariant is the caller's responsibility.
func (or *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	or.mu.Lock()
	defer or.mu.Unlock()

	order, exists := or.orders[id]
	if !exists {
		return nil
	}

	order.Status = status
	return nil
}

// MarkRated flags the order as having been rated once
func (or *orderRepository) MarkRated(ctx context.Context, id string) error {
	or.mu.Lock()
	defer or.mu.Unlock()

	order, exists := or.orders[id]
	if !exists {
		return nil
	}

	order.Rated = true
	return nil
}

func (or *orderRepository) Exists(ctx context.Context, id string) (bool, error) {
	or.mu.RLock()
	defer or.mu.RUnlock()

	_, exists := or.orders[id]
	return exists, nil
}

// cloneOrder copies the order and its item snapshots so callers cannot
// mutate stored state
func cloneOrder(order *entity.Order) *entity.Order {
	copied := *order
	copied.Items = make([]entity.CartItem, len(order.Items))
	copy(copied.Items, order.Items)
	return &copied
}
