package store

import (
	"sync"

	"github.com/svmehta/papertrade/internal/domain"
)

// TradeStore is a thread-safe in-memory append-only log of executed
// trades, in execution order.
type TradeStore struct {
	mu     sync.RWMutex
	trades []domain.Trade
}

// NewTradeStore creates an empty TradeStore.
func NewTradeStore() *TradeStore {
	return &TradeStore{}
}

// Append adds a trade to the log.
func (s *TradeStore) Append(t domain.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trades = append(s.trades, t)
}

// List returns all trades, most recent first.
func (s *TradeStore) List() []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Trade, len(s.trades))
	for i, t := range s.trades {
		result[len(s.trades)-1-i] = t
	}
	return result
}

// Len returns the number of trades recorded.
func (s *TradeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.trades)
}
