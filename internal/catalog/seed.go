package catalog

import "github.com/svmehta/papertrade/internal/domain"

// DefaultInstruments returns the sample NSE instruments the server is
// seeded with at startup.
func DefaultInstruments() []domain.Instrument {
	return []domain.Instrument{
		{Symbol: "RELIANCE", Exchange: "NSE", InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: 245050},
		{Symbol: "TCS", Exchange: "NSE", InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: 345075},
		{Symbol: "INFY", Exchange: "NSE", InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: 145025},
		{Symbol: "HDFCBANK", Exchange: "NSE", InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: 165000},
		{Symbol: "ICICIBANK", Exchange: "NSE", InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: 95050},
		{Symbol: "BHARTIARTL", Exchange: "NSE", InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: 105000},
		{Symbol: "SBIN", Exchange: "NSE", InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: 55025},
		{Symbol: "WIPRO", Exchange: "NSE", InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: 45075},
	}
}
