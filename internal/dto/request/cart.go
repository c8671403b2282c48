package request

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateQuantityRequest moves a line's quantity by delta, the result is
// floored at zero and a zero line leaves the cart
type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type SubscribeRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Frequency string `json:"frequency" validate:"required,oneof=Daily Weekly Monthly"`
}
