package wire

import (
	"kirana-connect/internal/adaptor"
	"kirana-connect/pkg/middleware"
	"kirana-connect/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/api/cart/checkout", orderHandler.Checkout)

		r.Get("/api/orders", orderHandler.Orders)
		r.Get("/api/orders/{orderID}", orderHandler.GetOrder)
		r.Get("/api/orders/{orderID}/tracking", orderHandler.Tracking)
		r.Delete("/api/orders/{orderID}/tracking", orderHandler.CloseTracking)
		r.Post("/api/orders/{orderID}/rating", orderHandler.RateOrder)
	})

	// ==================== SELLER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Seller(log))

		r.Get("/api/merchant/orders", orderHandler.AllOrders)
		r.Post("/api/merchant/orders/{orderID}/status", orderHandler.UpdateStatus)
	})
}
