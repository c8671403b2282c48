package adaptor

import (
	"encoding/json"
	"net/http"

	"kirana-connect/internal/dto/request"
	"kirana-connect/internal/usecase"
	"kirana-connect/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// Items handles GET /api/cart
func (h *CartHandler) Items(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Items(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "load cart")
		return
	}

	utils.ResponseSuccess(w, "OK", resp)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.AddItem(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "add cart item")
		return
	}

	utils.ResponseSuccess(w, "Item added", resp)
}

// UpdateQuantity handles PATCH /api/cart/items/{productID}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	productID := chi.URLParam(r, "productID")

	var req request.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateQuantity(r.Context(), userID, productID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update quantity")
		return
	}

	utils.ResponseSuccess(w, "Quantity updated", resp)
}

// Subscribe handles POST /api/cart/subscriptions
func (h *CartHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Subscribe(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "subscribe")
		return
	}

	utils.ResponseCreated(w, "Subscription added", resp)
}

// Subscriptions handles GET /api/cart/subscriptions
func (h *CartHandler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Subscriptions(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "load subscriptions")
		return
	}

	utils.ResponseSuccess(w, "OK", resp)
}

// requireUser pulls the authenticated user id set by the auth middleware
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}
