package repository

import (
	"context"
	"sync"

	"kirana-connect/internal/data/entity"

	"go.uber.org/zap"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	FindByStoreID(ctx context.Context, storeID string) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
}

type productRepository struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	order    []string
	log      *zap.Logger
}

func NewProductRepository(seed []entity.Product, log *zap.Logger) ProductRepository {
	pr := &productRepository{
		products: make(map[string]*entity.Product, len(seed)),
		log:      log,
	}
	for i := range seed {
		product := seed[i]
		pr.products[product.ID] = &product
		pr.order = append(pr.order, product.ID)
	}
	return pr
}

func (pr *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	pr.mu.RLock()
	defer pr.mu.RUnlock()

	result := make([]*entity.Product, 0, len(pr.order))
	for _, id := range pr.order {
		product := *pr.products[id]
		result = append(result, &product)
	}
	return result, nil
}

func (pr *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	pr.mu.RLock()
	defer pr.mu.RUnlock()

	product, exists := pr.products[id]
	if !exists {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (pr *productRepository) FindByStoreID(ctx context.Context, storeID string) ([]*entity.Product, error) {
	pr.mu.RLock()
	defer pr.mu.RUnlock()

	var result []*entity.Product
	for _, id := range pr.order {
		if pr.products[id].StoreID == storeID {
			product := *pr.products[id]
			result = append(result, &product)
		}
	}
	return result, nil
}

// Create adds a merchant-supplied product to the catalog
func (pr *productRepository) Create(ctx context.Context, product *entity.Product) error {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	copied := *product
	pr.products[copied.ID] = &copied
	pr.order = append(pr.order, copied.ID)

	pr.log.Info("Product added to catalog",
		zap.String("product_id", copied.ID),
		zap.String("store_id", copied.StoreID),
		zap.String("name", copied.Name),
	)
	return nil
}
