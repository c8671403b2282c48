package request

type CreateProductRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Brand                string  `json:"brand" validate:"required"`
	Weight               string  `json:"weight" validate:"required"`
	Price                float64 `json:"price" validate:"required,gt=0"`
	OriginalPrice        float64 `json:"original_price" validate:"omitempty,gt=0"`
	Category             string  `json:"category" validate:"required"`
	Image                string  `json:"image" validate:"omitempty"`
	StoreID              string  `json:"store_id" validate:"required"`
	SubscriptionEligible bool    `json:"subscription_eligible"`
}
