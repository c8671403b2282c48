package adaptor

import (
	"encoding/json"
	"net/http"

	"kirana-connect/internal/dto/request"
	"kirana-connect/internal/usecase"
	"kirana-connect/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// Checkout handles POST /api/cart/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Checkout(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "Order created", resp)
}

// Orders handles GET /api/orders
func (h *OrderHandler) Orders(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Orders(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "OK", resp)
}

// GetOrder handles GET /api/orders/{orderID}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "orderID")

	resp, err := h.service.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		respondServiceError(w, h.log, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "OK", resp)
}

// Tracking handles GET /api/orders/{orderID}/tracking
func (h *OrderHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "orderID")

	resp, err := h.service.Tracking(r.Context(), userID, orderID)
	if err != nil {
		respondServiceError(w, h.log, err, "track order")
		return
	}

	utils.ResponseSuccess(w, "OK", resp)
}

// CloseTracking handles DELETE /api/orders/{orderID}/tracking
func (h *OrderHandler) CloseTracking(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "orderID")

	if err := h.service.CloseTracking(r.Context(), userID, orderID); err != nil {
		respondServiceError(w, h.log, err, "close tracking")
		return
	}

	utils.ResponseSuccess(w, "Tracking closed", nil)
}

// RateOrder handles POST /api/orders/{orderID}/rating
func (h *OrderHandler) RateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "orderID")

	var req request.RateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.RateOrder(r.Context(), userID, orderID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "rate order")
		return
	}

	utils.ResponseSuccess(w, "Rating saved", resp)
}

// AllOrders handles GET /api/merchant/orders
func (h *OrderHandler) AllOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.AllOrders(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list all orders")
		return
	}

	utils.ResponseSuccess(w, "OK", resp)
}

// UpdateStatus handles POST /api/merchant/orders/{orderID}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), orderID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Status updated", resp)
}
