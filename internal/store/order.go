package store

import (
	"sync"
	"time"

	"github.com/svmehta/papertrade/internal/domain"
)

// OrderStore is a thread-safe in-memory store for orders, keyed by
// order_id, with a secondary slice preserving submission order.
// Reads return copies so callers never observe a half-applied status
// transition. Status transitions are one-way: NEW → FILLED or
// NEW → REJECTED, and terminal states are final.
type OrderStore struct {
	mu      sync.RWMutex
	orders  map[string]*domain.Order
	ordered []*domain.Order // submission order (append-only)
}

// NewOrderStore creates an empty OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*domain.Order),
	}
}

// Create adds an order to the store.
func (s *OrderStore) Create(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := o
	s.orders[o.OrderID] = &stored
	s.ordered = append(s.ordered, &stored)
}

// Get retrieves a copy of an order by ID. It returns
// domain.ErrOrderNotFound if the order does not exist.
func (s *OrderStore) Get(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return *o, nil
}

// List returns copies of all orders in submission order.
func (s *OrderStore) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, len(s.ordered))
	for i, o := range s.ordered {
		result[i] = *o
	}
	return result
}

// MarkFilled transitions an order from NEW to FILLED, recording the
// execution time and price. It returns domain.ErrOrderNotFound for an
// unknown ID and domain.ErrOrderNotExecutable if the order has already
// reached a terminal state.
func (s *OrderStore) MarkFilled(id string, executedAt time.Time, executedPrice int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Status != domain.OrderStatusNew {
		return domain.ErrOrderNotExecutable
	}
	o.Status = domain.OrderStatusFilled
	o.ExecutedAt = &executedAt
	o.ExecutedPrice = &executedPrice
	return nil
}

// MarkRejected transitions an order from NEW to REJECTED. It returns
// domain.ErrOrderNotFound for an unknown ID and
// domain.ErrOrderNotExecutable if the order has already reached a
// terminal state.
func (s *OrderStore) MarkRejected(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Status != domain.OrderStatusNew {
		return domain.ErrOrderNotExecutable
	}
	o.Status = domain.OrderStatusRejected
	return nil
}
