package entity

import (
	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
)

// CartItem is a product snapshot plus quantity. Once an order is created the
// snapshot is immutable, later catalog changes never touch it.
type CartItem struct {
	Product
	Quantity       int
	IsSubscription bool
	Frequency      Frequency
}

// Subtotal is price x quantity for this line
func (c CartItem) Subtotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
