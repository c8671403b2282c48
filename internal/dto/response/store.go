package response

import (
	"kirana-connect/internal/data/entity"

	"github.com/shopspring/decimal"
)

type StoreResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Rating       float64          `json:"rating"`
	ReviewCount  int              `json:"review_count"`
	Distance     string           `json:"distance"`
	DeliveryTime string           `json:"delivery_time"`
	Image        string           `json:"image"`
	Category     []string         `json:"category"`
	IsBestPrice  bool             `json:"is_best_price,omitempty"`
	Type         entity.StoreType `json:"type,omitempty"`
}

type ProductResponse struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Brand                string          `json:"brand"`
	Weight               string          `json:"weight"`
	Price                decimal.Decimal `json:"price"`
	OriginalPrice        decimal.Decimal `json:"original_price"`
	Category             string          `json:"category"`
	Image                string          `json:"image"`
	StoreID              string          `json:"store_id"`
	SubscriptionEligible bool            `json:"subscription_eligible,omitempty"`
}

func StoreToResponse(store *entity.Store) StoreResponse {
	return StoreResponse{
		ID:           store.ID,
		Name:         store.Name,
		Rating:       store.Rating,
		ReviewCount:  store.ReviewCount,
		Distance:     store.Distance,
		DeliveryTime: store.DeliveryTime,
		Image:        store.Image,
		Category:     store.Category,
		IsBestPrice:  store.IsBestPrice,
		Type:         store.Type,
	}
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:                   product.ID,
		Name:                 product.Name,
		Brand:                product.Brand,
		Weight:               product.Weight,
		Price:                product.Price,
		OriginalPrice:        product.OriginalPrice,
		Category:             product.Category,
		Image:                product.Image,
		StoreID:              product.StoreID,
		SubscriptionEligible: product.SubscriptionEligible,
	}
}
