package adaptor

import (
	"errors"
	"net/http"

	"kirana-connect/internal/data/repository"
	"kirana-connect/internal/usecase"
	"kirana-connect/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Store *StoreHandler
	Cart  *CartHandler
	Order *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		Store: NewStoreHandler(service.Store, log),
		Cart:  NewCartHandler(service.Cart, log),
		Order: NewOrderHandler(service.Order, log),
	}
}

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Anything unrecognized is a 500 with a generic message.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var transitionErr *usecase.IllegalTransitionError

	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidToken):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, repository.ErrEmailExists),
		errors.Is(err, usecase.ErrAlreadySubscribed):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrEmptyCart):
		log.Warn(operation+" failed - precondition", zap.Error(err))
		utils.ResponsePreconditionFailed(w, err.Error())

	case errors.As(err, &transitionErr),
		errors.Is(err, usecase.ErrNotSubscribable),
		errors.Is(err, usecase.ErrNotDelivered),
		errors.Is(err, usecase.ErrAlreadyRated):
		log.Warn(operation+" failed - state", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
