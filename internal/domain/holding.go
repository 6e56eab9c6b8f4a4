package domain

// Holding is the current position in a single instrument: the quantity
// owned and the average purchase price. Quantity is never negative.
type Holding struct {
	Symbol       string
	Exchange     string
	Quantity     int64
	AveragePrice int64 // paise
}
