package service

import (
	"github.com/svmehta/papertrade/internal/catalog"
	"github.com/svmehta/papertrade/internal/domain"
	"github.com/svmehta/papertrade/internal/ledger"
	"github.com/svmehta/papertrade/internal/store"
)

// PortfolioHolding is a holding enriched with its current market value
// at the instrument's last traded price.
type PortfolioHolding struct {
	domain.Holding
	CurrentValue int64 // paise
}

// PortfolioService answers read queries over the portfolio ledger and
// the trade log.
type PortfolioService struct {
	ledger     *ledger.Ledger
	tradeStore *store.TradeStore
	catalog    *catalog.Catalog
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(ledg *ledger.Ledger, tradeStore *store.TradeStore, cat *catalog.Catalog) *PortfolioService {
	return &PortfolioService{
		ledger:     ledg,
		tradeStore: tradeStore,
		catalog:    cat,
	}
}

// GetHoldings returns a snapshot of all holdings with current values
// computed from the catalog's last traded prices. Holdings whose
// instrument is unknown to the catalog are valued at their average
// price.
func (s *PortfolioService) GetHoldings() []PortfolioHolding {
	holdings := s.ledger.Holdings()
	result := make([]PortfolioHolding, len(holdings))
	for i, h := range holdings {
		price := h.AveragePrice
		if ins, err := s.catalog.Lookup(h.Symbol, h.Exchange); err == nil {
			price = ins.LastTradedPrice
		}
		result[i] = PortfolioHolding{
			Holding:      h,
			CurrentValue: h.Quantity * price,
		}
	}
	return result
}

// ListTrades returns all executed trades, most recent first.
func (s *PortfolioService) ListTrades() []domain.Trade {
	return s.tradeStore.List()
}
