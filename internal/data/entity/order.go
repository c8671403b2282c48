package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusAccepted       OrderStatus = "Accepted"
	OrderStatusPacked         OrderStatus = "Packed"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// statusRank fixes the strict ordering of the lifecycle
var statusRank = map[OrderStatus]int{
	OrderStatusPending:        0,
	OrderStatusAccepted:       1,
	OrderStatusPacked:         2,
	OrderStatusOutForDelivery: 3,
	OrderStatusDelivered:      4,
}

func (s OrderStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered
}

// Next returns the single following status, or the status itself when terminal
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case OrderStatusPending:
		return OrderStatusAccepted
	case OrderStatusAccepted:
		return OrderStatusPacked
	case OrderStatusPacked:
		return OrderStatusOutForDelivery
	default:
		return OrderStatusDelivered
	}
}

// CanTransition reports whether to is the immediate forward step from s.
// Backward moves and skips are never allowed.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	target, ok := statusRank[to]
	if !ok {
		return false
	}
	return target == from+1
}

// BaselineProgress is the fixed progress percentage shown for each status
func (s OrderStatus) BaselineProgress() float64 {
	switch s {
	case OrderStatusPending:
		return 5
	case OrderStatusAccepted:
		return 25
	case OrderStatusPacked:
		return 45
	case OrderStatusOutForDelivery:
		return 70
	case OrderStatusDelivered:
		return 100
	}
	return 0
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

type Order struct {
	ID               string
	UserID           uuid.UUID
	StoreID          string
	StoreName        string
	Items            []CartItem
	Total            decimal.Decimal
	Status           OrderStatus
	CreatedAt        time.Time
	EstimatedMinutes float64
	Rated            bool
}
