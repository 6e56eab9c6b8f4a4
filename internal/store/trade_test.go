package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/svmehta/papertrade/internal/domain"
)

func newTestTrade(id string, executedAt time.Time) domain.Trade {
	return domain.Trade{
		TradeID:    id,
		OrderID:    "ORD00000001",
		Symbol:     "TCS",
		Exchange:   "NSE",
		OrderType:  domain.OrderTypeBuy,
		Quantity:   10,
		Price:      345075,
		ExecutedAt: executedAt,
	}
}

func TestTradeStore_Append_and_List(t *testing.T) {
	s := NewTradeStore()
	now := time.Now()

	s.Append(newTestTrade("TRD00000001", now))
	s.Append(newTestTrade("TRD00000002", now.Add(time.Second)))

	trades := s.List()
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	// Most recent first.
	if trades[0].TradeID != "TRD00000002" {
		t.Fatalf("expected TRD00000002 first, got %s", trades[0].TradeID)
	}
	if trades[1].TradeID != "TRD00000001" {
		t.Fatalf("expected TRD00000001 second, got %s", trades[1].TradeID)
	}
}

func TestTradeStore_List_Empty(t *testing.T) {
	s := NewTradeStore()

	trades := s.List()
	if trades == nil {
		t.Fatal("expected non-nil empty slice, got nil")
	}
	if len(trades) != 0 {
		t.Fatalf("expected 0 trades, got %d", len(trades))
	}
}

func TestTradeStore_ConcurrentAppend(t *testing.T) {
	s := NewTradeStore()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(newTestTrade(fmt.Sprintf("TRD%08d", i), time.Now()))
			s.List()
		}(i)
	}
	wg.Wait()

	if s.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", s.Len())
	}
}
