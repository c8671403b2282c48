package usecase

import (
	"context"
	"fmt"

	"kirana-connect/internal/data/entity"
	"kirana-connect/internal/data/repository"
	"kirana-connect/internal/dto/request"
	"kirana-connect/internal/dto/response"
	"kirana-connect/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type StoreService interface {
	ListStores(ctx context.Context) ([]response.StoreResponse, error)
	GetStore(ctx context.Context, id string) (*response.StoreResponse, error)
	ListProducts(ctx context.Context, storeID string) ([]response.ProductResponse, error)
	AddProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
}

type storeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStoreService(repo *repository.Repository, log *zap.Logger) StoreService {
	return &storeService{
		repo: repo,
		log:  log,
	}
}

func (s *storeService) ListStores(ctx context.Context) ([]response.StoreResponse, error) {
	stores, err := s.repo.Store.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list stores", zap.Error(err))
		return nil, fmt.Errorf("failed to list stores")
	}

	result := make([]response.StoreResponse, len(stores))
	for i, store := range stores {
		result[i] = response.StoreToResponse(store)
	}
	return result, nil
}

func (s *storeService) GetStore(ctx context.Context, id string) (*response.StoreResponse, error) {
	store, err := s.repo.Store.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", id))
		return nil, fmt.Errorf("failed to find store")
	}
	if store == nil {
		return nil, ErrNotFound
	}

	resp := response.StoreToResponse(store)
	return &resp, nil
}

// ListProducts returns the store's catalog, or the whole catalog when storeID
// is empty
func (s *storeService) ListProducts(ctx context.Context, storeID string) ([]response.ProductResponse, error) {
	var (
		products []*entity.Product
		err      error
	)

	if storeID == "" {
		products, err = s.repo.Product.FindAll(ctx)
	} else {
		store, findErr := s.repo.Store.FindByID(ctx, storeID)
		if findErr != nil {
			s.log.Error("Failed to find store", zap.Error(findErr), zap.String("store_id", storeID))
			return nil, fmt.Errorf("failed to find store")
		}
		if store == nil {
			return nil, ErrNotFound
		}
		products, err = s.repo.Product.FindByStoreID(ctx, storeID)
	}
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("failed to list products")
	}

	result := make([]response.ProductResponse, len(products))
	for i, product := range products {
		result[i] = response.ProductToResponse(product)
	}
	return result, nil
}

func (s *storeService) AddProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add product validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	// 2. The store must exist
	store, err := s.repo.Store.FindByID(ctx, req.StoreID)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", req.StoreID))
		return nil, fmt.Errorf("failed to find store")
	}
	if store == nil {
		return nil, ErrNotFound
	}

	// 3. Build the product; a missing original price falls back to the price
	price := decimal.NewFromFloat(req.Price)
	originalPrice := decimal.NewFromFloat(req.OriginalPrice)
	if req.OriginalPrice <= 0 {
		originalPrice = price
	}

	product := &entity.Product{
		ID:                   "p-" + utils.GenerateUUID().String(),
		Name:                 req.Name,
		Brand:                req.Brand,
		Weight:               req.Weight,
		Price:                price,
		OriginalPrice:        originalPrice,
		Category:             req.Category,
		Image:                req.Image,
		StoreID:              req.StoreID,
		SubscriptionEligible: req.SubscriptionEligible,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("store_id", req.StoreID))
		return nil, fmt.Errorf("failed to create product")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}
