package domain

import "time"

// Trade is the immutable record of an executed fill against an order.
type Trade struct {
	TradeID    string
	OrderID    string
	Symbol     string
	Exchange   string
	OrderType  OrderType
	Quantity   int64
	Price      int64 // paise
	ExecutedAt time.Time
}
