package domain

import "time"

// OrderType indicates whether an order buys or sells the instrument.
type OrderType string

const (
	OrderTypeBuy  OrderType = "BUY"
	OrderTypeSell OrderType = "SELL"
)

// OrderStyle distinguishes market orders from limit orders.
type OrderStyle string

const (
	OrderStyleMarket OrderStyle = "MARKET"
	OrderStyleLimit  OrderStyle = "LIMIT"
)

// OrderStatus represents the lifecycle state of an order.
// NEW is the only non-terminal state; an order transitions exactly
// once to FILLED or REJECTED and never changes again.
type OrderStatus string

const (
	OrderStatusNew      OrderStatus = "NEW"
	OrderStatusFilled   OrderStatus = "FILLED"
	OrderStatusRejected OrderStatus = "REJECTED"
)

// Order represents a buy or sell instruction submitted against an
// instrument.
type Order struct {
	OrderID       string
	Symbol        string
	Exchange      string
	OrderType     OrderType
	OrderStyle    OrderStyle
	Quantity      int64
	Price         *int64 // paise, required for LIMIT orders
	Status        OrderStatus
	CreatedAt     time.Time
	ExecutedAt    *time.Time
	ExecutedPrice *int64 // paise, set when the order fills
}
