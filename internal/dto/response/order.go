package response

import (
	"time"

	"kirana-connect/internal/data/entity"
	"kirana-connect/internal/tracker"

	"github.com/shopspring/decimal"
)

type CartItemResponse struct {
	Product        ProductResponse  `json:"product"`
	Quantity       int              `json:"quantity"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	IsSubscription bool             `json:"is_subscription,omitempty"`
	Frequency      entity.Frequency `json:"frequency,omitempty"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
	Count int                `json:"count"`
}

type OrderResponse struct {
	ID               string             `json:"id"`
	StoreID          string             `json:"store_id"`
	StoreName        string             `json:"store_name"`
	Items            []CartItemResponse `json:"items"`
	Total            decimal.Decimal    `json:"total"`
	Status           entity.OrderStatus `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	EstimatedMinutes float64            `json:"estimated_minutes"`
	Rated            bool               `json:"rated"`
}

type TrackingResponse struct {
	OrderID         string             `json:"order_id"`
	Status          entity.OrderStatus `json:"status"`
	Progress        float64            `json:"progress"`
	TimeLeftSeconds int                `json:"time_left_seconds"`
	RatingDue       bool               `json:"rating_due"`
}

type SubscriptionToastResponse struct {
	Product   string           `json:"product"`
	Frequency entity.Frequency `json:"frequency"`
}

func CartItemToResponse(item entity.CartItem) CartItemResponse {
	return CartItemResponse{
		Product:        ProductToResponse(&item.Product),
		Quantity:       item.Quantity,
		Subtotal:       item.Subtotal(),
		IsSubscription: item.IsSubscription,
		Frequency:      item.Frequency,
	}
}

func CartToResponse(items []entity.CartItem) CartResponse {
	resp := CartResponse{
		Items: make([]CartItemResponse, len(items)),
		Total: decimal.Zero,
	}
	for i, item := range items {
		resp.Items[i] = CartItemToResponse(item)
		resp.Total = resp.Total.Add(item.Subtotal())
		resp.Count += item.Quantity
	}
	return resp
}

func OrderToResponse(order *entity.Order) OrderResponse {
	items := make([]CartItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = CartItemToResponse(item)
	}

	return OrderResponse{
		ID:               order.ID,
		StoreID:          order.StoreID,
		StoreName:        order.StoreName,
		Items:            items,
		Total:            order.Total,
		Status:           order.Status,
		CreatedAt:        order.CreatedAt,
		EstimatedMinutes: order.EstimatedMinutes,
		Rated:            order.Rated,
	}
}

func TrackingToResponse(snap tracker.Snapshot) TrackingResponse {
	return TrackingResponse{
		OrderID:         snap.OrderID,
		Status:          snap.Status,
		Progress:        snap.Progress,
		TimeLeftSeconds: snap.TimeLeftSeconds,
		RatingDue:       snap.RatingDue,
	}
}
