package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"kirana-connect/internal/data/entity"
	"kirana-connect/internal/data/repository"
	"kirana-connect/internal/dto/request"
	"kirana-connect/internal/dto/response"
	"kirana-connect/internal/tracker"
	"kirana-connect/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// orderIDAttempts bounds the collision retry loop on the 4-digit id space
const orderIDAttempts = 32

type OrderService interface {
	Checkout(ctx context.Context, userID uuid.UUID) (*response.OrderResponse, error)
	Orders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)
	GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*response.OrderResponse, error)
	AllOrders(ctx context.Context) ([]response.OrderResponse, error)
	UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
	Tracking(ctx context.Context, userID uuid.UUID, orderID string) (*response.TrackingResponse, error)
	CloseTracking(ctx context.Context, userID uuid.UUID, orderID string) error
	RateOrder(ctx context.Context, userID uuid.UUID, orderID string, req *request.RateOrderRequest) (*response.StoreResponse, error)
}

type orderService struct {
	repo     *repository.Repository
	trackers *tracker.Manager
	config   *utils.Config
	log      *zap.Logger
}

func NewOrderService(
	repo *repository.Repository,
	trackers *tracker.Manager,
	config *utils.Config,
	log *zap.Logger,
) OrderService {
	return &orderService{
		repo:     repo,
		trackers: trackers,
		config:   config,
		log:      log,
	}
}

// Checkout turns the user's cart into a Pending order: snapshots the items,
// totals them from the catalog prices, clears the cart and starts the delivery
// tracker. The order is pinned to the first item's store.
func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID) (*response.OrderResponse, error) {
	// 1. Precondition: the cart must hold something
	items, err := s.repo.Cart.Items(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load cart")
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// 2. Resolve the store from the first line
	store, err := s.repo.Store.FindByID(ctx, items[0].StoreID)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", items[0].StoreID))
		return nil, fmt.Errorf("failed to find store")
	}
	storeID := items[0].StoreID
	storeName := ""
	if store != nil {
		storeName = store.Name
	}

	// 3. Total from the snapshotted prices
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	// 4. Display id, retried on the rare collision
	orderID, err := s.nextOrderID(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:               orderID,
		UserID:           userID,
		StoreID:          storeID,
		StoreName:        storeName,
		Items:            items,
		Total:            total,
		Status:           entity.OrderStatusPending,
		CreatedAt:        time.Now(),
		EstimatedMinutes: s.config.Delivery.EstimateMinutes,
	}

	// 5. Persist, clear the cart, start tracking
	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to create order")
	}
	if err := s.repo.Cart.Clear(ctx, userID); err != nil {
		s.log.Warn("Failed to clear cart after checkout",
			zap.Error(err), zap.String("user_id", userID.String()))
	}

	s.trackers.Attach(order, s.deliverOrder)

	s.log.Info("Order created",
		zap.String("order_id", orderID),
		zap.String("user_id", userID.String()),
		zap.String("store_id", storeID),
		zap.String("total", total.String()))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) Orders(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list orders")
	}

	result := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		result[i] = response.OrderToResponse(order)
	}
	return result, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*response.OrderResponse, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

// AllOrders is the merchant view, every order most-recent-first
func (s *orderService) AllOrders(ctx context.Context) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list all orders", zap.Error(err))
		return nil, fmt.Errorf("failed to list orders")
	}

	result := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		result[i] = response.OrderToResponse(order)
	}
	return result, nil
}

// UpdateStatus applies a merchant-driven transition. Only the single forward
// step is allowed; skips and backward moves are rejected.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	target := entity.OrderStatus(req.Status)
	if !target.IsValid() {
		return nil, validationError(fmt.Sprintf("unknown status %q", req.Status))
	}

	// 2. The order must exist
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to find order")
	}
	if order == nil {
		return nil, ErrNotFound
	}

	// 3. Forward-only, single-step
	if !order.Status.CanTransition(target) {
		return nil, &IllegalTransitionError{From: order.Status, To: target}
	}

	if err := s.repo.Order.UpdateStatus(ctx, orderID, target); err != nil {
		s.log.Error("Failed to update order status", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to update order status")
	}
	s.trackers.SetStatus(orderID, target)

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("from", order.Status.String()),
		zap.String("to", target.String()))

	order.Status = target
	resp := response.OrderToResponse(order)
	return &resp, nil
}

// Tracking returns the live delivery read model, attaching a tracker when the
// order is not being tracked yet. Attaching makes this the user's active order.
func (s *orderService) Tracking(ctx context.Context, userID uuid.UUID, orderID string) (*response.TrackingResponse, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	snap, tracked := s.trackers.Snapshot(orderID)
	if !tracked {
		s.trackers.Attach(order, s.deliverOrder)
		snap, _ = s.trackers.Snapshot(orderID)
	}

	resp := response.TrackingToResponse(snap)
	return &resp, nil
}

// CloseTracking detaches the order's tracker, halting all further automatic
// mutation
func (s *orderService) CloseTracking(ctx context.Context, userID uuid.UUID, orderID string) error {
	if _, err := s.findOwnedOrder(ctx, userID, orderID); err != nil {
		return err
	}

	s.trackers.Detach(orderID)
	return nil
}

// RateOrder folds a 1-5 rating for a delivered order into the store's running
// average, once per order. Per-item ratings are accepted and logged, they do
// not feed the average.
func (s *orderService) RateOrder(ctx context.Context, userID uuid.UUID, orderID string, req *request.RateOrderRequest) (*response.StoreResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Rate order validation failed", zap.Any("errors", errs))
		return nil, validationError(utils.FormatValidationErrors(errs))
	}

	// 2. Delivered, unrated orders only
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.IsTerminal() {
		return nil, ErrNotDelivered
	}
	if order.Rated {
		return nil, ErrAlreadyRated
	}

	store, err := s.repo.Store.FindByID(ctx, order.StoreID)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", order.StoreID))
		return nil, fmt.Errorf("failed to find store")
	}
	if store == nil {
		return nil, ErrNotFound
	}

	// 3. Running average, rounded to one decimal place
	newCount := store.ReviewCount + 1
	newRating := round1((store.Rating*float64(store.ReviewCount) + float64(req.Rating)) / float64(newCount))

	if err := s.repo.Store.UpdateRating(ctx, store.ID, newRating, newCount); err != nil {
		s.log.Error("Failed to update store rating", zap.Error(err), zap.String("store_id", store.ID))
		return nil, fmt.Errorf("failed to update rating")
	}
	if err := s.repo.Order.MarkRated(ctx, orderID); err != nil {
		s.log.Error("Failed to mark order rated", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to save rating")
	}
	s.trackers.MarkRated(orderID)

	if len(req.ItemRatings) > 0 {
		s.log.Info("Item ratings received",
			zap.String("order_id", orderID),
			zap.Any("item_ratings", req.ItemRatings))
	}
	s.log.Info("Store rated",
		zap.String("order_id", orderID),
		zap.String("store_id", store.ID),
		zap.Int("rating", req.Rating),
		zap.Float64("new_rating", newRating),
		zap.Int("review_count", newCount))

	store.Rating = newRating
	store.ReviewCount = newCount
	resp := response.StoreToResponse(store)
	return &resp, nil
}

// deliverOrder is the tracker countdown callback: persist the terminal status.
// The tracker re-baselines itself, no SetStatus round-trip needed.
func (s *orderService) deliverOrder(orderID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.repo.Order.UpdateStatus(ctx, orderID, entity.OrderStatusDelivered); err != nil {
		s.log.Error("Failed to persist delivery", zap.Error(err), zap.String("order_id", orderID))
		return
	}
	s.trackers.SetStatus(orderID, entity.OrderStatusDelivered)

	s.log.Info("Order delivered", zap.String("order_id", orderID))
}

// findOwnedOrder loads the order and hides other users' orders behind
// not-found
func (s *orderService) findOwnedOrder(ctx context.Context, userID uuid.UUID, orderID string) (*entity.Order, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to find order")
	}
	if order == nil || order.UserID != userID {
		return nil, ErrNotFound
	}
	return order, nil
}

func (s *orderService) nextOrderID(ctx context.Context) (string, error) {
	for i := 0; i < orderIDAttempts; i++ {
		id := utils.GenerateOrderID()
		exists, err := s.repo.Order.Exists(ctx, id)
		if err != nil {
			s.log.Error("Failed to check order id", zap.Error(err), zap.String("order_id", id))
			return "", fmt.Errorf("failed to create order")
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to allocate order id")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
