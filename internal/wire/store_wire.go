package wire

import (
	"kirana-connect/internal/adaptor"
	"kirana-connect/pkg/middleware"
	"kirana-connect/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStore(
	r chi.Router,
	storeHandler *adaptor.StoreHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing the catalog needs no account
	r.Get("/api/stores", storeHandler.ListStores)
	r.Get("/api/stores/{storeID}", storeHandler.GetStore)
	r.Get("/api/stores/{storeID}/products", storeHandler.ListProducts)

	// ==================== SELLER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Seller(log))

		r.Post("/api/merchant/products", storeHandler.AddProduct)
	})
}
