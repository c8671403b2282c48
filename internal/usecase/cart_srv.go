package usecase

import (
	"context"
	"fmt"

	"kirana-connect/internal/data/entity"
	"kirana-connect/internal/data/repository"
	"kirana-connect/internal/dto/request"
	"kirana-connect/internal/dto/response"
	"kirana-connect/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService interface {
	Items(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *request.AddCartItemRequest) (*response.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, productID string, req *request.UpdateQuantityRequest) (*response.CartResponse, error)
	Subscribe(ctx context.Context, userID uuid.UUID, req *request.SubscribeRequest) (*response.SubscriptionToastResponse, error)
	Subscriptions(ctx context.Context, userID uuid.UUID) ([]response.CartItemResponse, error)
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log,
	}
}

func (s *cartService) Items(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error) {
	items, err := s.repo.Cart.Items(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load cart")
	}

	resp := response.CartToResponse(items)
	return &resp, nil
}

// AddItem puts one unit of the product in the cart, incrementing the quantity
// when the line already exists. The price is snapshotted from the catalog,
// never taken from the client.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *request.AddCartItemRequest) (*response.CartResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add cart item validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	// 2. Resolve the product from the canonical catalog
	product, err := s.repo.Product.FindByID(ctx, req.ProductID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, fmt.Errorf("failed to find product")
	}
	if product == nil {
		return nil, ErrNotFound
	}

	// 3. Merge into the existing line or append a new one
	items, err := s.repo.Cart.Items(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load cart")
	}

	found := false
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, entity.CartItem{
			Product:  *product,
			Quantity: 1,
		})
	}

	if err := s.repo.Cart.Save(ctx, userID, items); err != nil {
		s.log.Error("Failed to save cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to save cart")
	}

	resp := response.CartToResponse(items)
	return &resp, nil
}

// UpdateQuantity applies a signed delta to the product's line. A quantity
// dropping to zero or below removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID string, req *request.UpdateQuantityRequest) (*response.CartResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update quantity validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	items, err := s.repo.Cart.Items(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load cart")
	}

	// 2. Find the line, apply the delta
	index := -1
	for i := range items {
		if items[i].Product.ID == productID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrNotFound
	}

	items[index].Quantity += req.Delta
	if items[index].Quantity <= 0 {
		items = append(items[:index], items[index+1:]...)
	}

	if err := s.repo.Cart.Save(ctx, userID, items); err != nil {
		s.log.Error("Failed to save cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to save cart")
	}

	resp := response.CartToResponse(items)
	return &resp, nil
}

// Subscribe registers a recurring delivery for an eligible product, at most
// one subscription per product. The returned payload feeds the confirmation
// toast.
func (s *cartService) Subscribe(ctx context.Context, userID uuid.UUID, req *request.SubscribeRequest) (*response.SubscriptionToastResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Subscribe validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	// 2. Only subscription-eligible products qualify
	product, err := s.repo.Product.FindByID(ctx, req.ProductID)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, fmt.Errorf("failed to find product")
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if !product.SubscriptionEligible {
		return nil, ErrNotSubscribable
	}

	item := entity.CartItem{
		Product:        *product,
		Quantity:       1,
		IsSubscription: true,
		Frequency:      entity.Frequency(req.Frequency),
	}

	added, err := s.repo.Cart.AddSubscription(ctx, userID, item)
	if err != nil {
		s.log.Error("Failed to add subscription", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to add subscription")
	}
	if !added {
		return nil, ErrAlreadySubscribed
	}

	s.log.Info("Subscription added",
		zap.String("user_id", userID.String()),
		zap.String("product_id", product.ID),
		zap.String("frequency", req.Frequency))

	return &response.SubscriptionToastResponse{
		Product:   product.Name,
		Frequency: entity.Frequency(req.Frequency),
	}, nil
}

func (s *cartService) Subscriptions(ctx context.Context, userID uuid.UUID) ([]response.CartItemResponse, error) {
	subs, err := s.repo.Cart.Subscriptions(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load subscriptions", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load subscriptions")
	}

	result := make([]response.CartItemResponse, len(subs))
	for i, sub := range subs {
		result[i] = response.CartItemToResponse(sub)
	}
	return result, nil
}
