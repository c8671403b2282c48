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

type StoreHandler struct {
	service usecase.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log,
	}
}

// ListStores handles GET /api/stores
func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListStores(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, "OK", resp)
}

// GetStore handles GET /api/stores/{storeID}
func (h *StoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	resp, err := h.service.GetStore(r.Context(), storeID)
	if err != nil {
		respondServiceError(w, h.log, err, "get store")
		return
	}

	utils.ResponseSuccess(w, "OK", resp)
}

// ListProducts handles GET /api/stores/{storeID}/products
func (h *StoreHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	resp, err := h.service.ListProducts(r.Context(), storeID)
	if err != nil {
		respondServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "OK", resp)
}

// AddProduct handles POST /api/merchant/products
func (h *StoreHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.AddProduct(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "add product")
		return
	}

	utils.ResponseCreated(w, "Product created", resp)
}
