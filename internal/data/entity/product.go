package entity

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID                   string
	Name                 string
	Brand                string
	Weight               string
	Price                decimal.Decimal
	OriginalPrice        decimal.Decimal
	Category             string
	Image                string
	StoreID              string
	SubscriptionEligible bool
}
