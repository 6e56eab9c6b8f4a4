package domain

// InstrumentType classifies a tradable instrument.
type InstrumentType string

const (
	InstrumentTypeEquity  InstrumentType = "EQUITY"
	InstrumentTypeFutures InstrumentType = "FUTURES"
	InstrumentTypeOptions InstrumentType = "OPTIONS"
)

// Instrument is a tradable security, uniquely identified by the
// (symbol, exchange) pair. Instruments are seeded at startup and
// immutable afterwards.
type Instrument struct {
	Symbol          string
	Exchange        string
	InstrumentType  InstrumentType
	LastTradedPrice int64 // paise
}
