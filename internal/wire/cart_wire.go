package wire

import (
	"kirana-connect/internal/adaptor"
	"kirana-connect/pkg/middleware"
	"kirana-connect/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Get("/api/cart", cartHandler.Items)
		r.Post("/api/cart/items", cartHandler.AddItem)
		r.Patch("/api/cart/items/{productID}", cartHandler.UpdateQuantity)
		r.Get("/api/cart/subscriptions", cartHandler.Subscriptions)
		r.Post("/api/cart/subscriptions", cartHandler.Subscribe)
	})
}
