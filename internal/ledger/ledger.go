package ledger

import (
	"sort"
	"sync"

	"github.com/svmehta/papertrade/internal/domain"
)

// Ledger tracks portfolio holdings per (symbol, exchange) pair. Fills
// are applied atomically under the write lock; readers always observe
// fully-applied holdings. A holding is removed when its quantity
// reaches zero, and the quantity invariant holds at all times:
// quantity ≥ 0.
type Ledger struct {
	mu       sync.RWMutex
	holdings map[string]*domain.Holding // "SYMBOL_EXCHANGE" → holding
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{
		holdings: make(map[string]*domain.Holding),
	}
}

// ApplyFill mutates the holding for an executed fill.
//
// BUY: quantity increases and the average price is recomputed as the
// quantity-weighted mean of the prior holding and the fill.
// SELL: quantity decreases and the average price is unchanged; the
// fill is refused with domain.ErrInsufficientHoldings if it would
// drive the quantity negative.
func (l *Ledger) ApplyFill(symbol, exchange string, orderType domain.OrderType, quantity, price int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := key(symbol, exchange)
	h := l.holdings[k]

	if orderType == domain.OrderTypeSell {
		if h == nil || h.Quantity < quantity {
			return domain.ErrInsufficientHoldings
		}
		h.Quantity -= quantity
		if h.Quantity == 0 {
			delete(l.holdings, k)
		}
		return nil
	}

	if h == nil {
		l.holdings[k] = &domain.Holding{
			Symbol:       symbol,
			Exchange:     exchange,
			Quantity:     quantity,
			AveragePrice: price,
		}
		return nil
	}

	total := h.Quantity + quantity
	h.AveragePrice = (h.Quantity*h.AveragePrice + quantity*price) / total
	h.Quantity = total
	return nil
}

// Quantity returns the held quantity for a (symbol, exchange) pair,
// or 0 when nothing is held.
func (l *Ledger) Quantity(symbol, exchange string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	h, ok := l.holdings[key(symbol, exchange)]
	if !ok {
		return 0
	}
	return h.Quantity
}

// Holdings returns a point-in-time snapshot of all holdings, ordered
// by (symbol, exchange).
func (l *Ledger) Holdings() []domain.Holding {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]domain.Holding, 0, len(l.holdings))
	for _, h := range l.holdings {
		result = append(result, *h)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Symbol != result[j].Symbol {
			return result[i].Symbol < result[j].Symbol
		}
		return result[i].Exchange < result[j].Exchange
	})
	return result
}

func key(symbol, exchange string) string {
	return symbol + "_" + exchange
}
