package request

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RateOrderRequest struct {
	Rating      int            `json:"rating" validate:"required,gte=1,lte=5"`
	ItemRatings map[string]int `json:"item_ratings" validate:"omitempty,dive,gte=1,lte=5"`
}
