package usecase

import (
	"errors"
	"fmt"

	"kirana-connect/internal/data/entity"
)

// Sentinel errors the adaptor layer maps onto HTTP responses.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
	ErrNotSubscribable    = errors.New("product is not subscription eligible")
	ErrAlreadySubscribed  = errors.New("product already has a subscription")
	ErrNotDelivered       = errors.New("order has not been delivered yet")
	ErrAlreadyRated       = errors.New("order already rated")
)

// IllegalTransitionError rejects a status change that is not the single
// forward step in the order lifecycle.
type IllegalTransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %q to %q", e.From, e.To)
}

func validationError(messages string) error {
	return fmt.Errorf("%w: %s", ErrValidation, messages)
}
