package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/svmehta/papertrade/internal/domain"
)

func newTestOrder(id string) domain.Order {
	return domain.Order{
		OrderID:    id,
		Symbol:     "RELIANCE",
		Exchange:   "NSE",
		OrderType:  domain.OrderTypeBuy,
		OrderStyle: domain.OrderStyleMarket,
		Quantity:   10,
		Status:     domain.OrderStatusNew,
		CreatedAt:  time.Now(),
	}
}

func TestOrderStore_Create_and_Get(t *testing.T) {
	s := NewOrderStore()
	s.Create(newTestOrder("ORD00000001"))

	got, err := s.Get("ORD00000001")
	if err != nil {
		t.Fatalf("Get unexpected error: %v", err)
	}
	if got.Symbol != "RELIANCE" || got.Status != domain.OrderStatusNew {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestOrderStore_Get_NotFound(t *testing.T) {
	s := NewOrderStore()

	_, err := s.Get("ORDMISSING")
	if err != domain.ErrOrderNotFound {
		t.Fatalf("Get error = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderStore_Get_ReturnsCopy(t *testing.T) {
	s := NewOrderStore()
	s.Create(newTestOrder("ORD00000001"))

	got, _ := s.Get("ORD00000001")
	got.Status = domain.OrderStatusFilled

	again, _ := s.Get("ORD00000001")
	if again.Status != domain.OrderStatusNew {
		t.Fatal("mutating a returned order leaked into the store")
	}
}

func TestOrderStore_List_SubmissionOrder(t *testing.T) {
	s := NewOrderStore()
	for i := 0; i < 5; i++ {
		s.Create(newTestOrder(fmt.Sprintf("ORD%08d", i)))
	}

	list := s.List()
	if len(list) != 5 {
		t.Fatalf("List() returned %d orders, want 5", len(list))
	}
	for i, o := range list {
		want := fmt.Sprintf("ORD%08d", i)
		if o.OrderID != want {
			t.Fatalf("List()[%d].OrderID = %s, want %s", i, o.OrderID, want)
		}
	}
}

func TestOrderStore_MarkFilled(t *testing.T) {
	s := NewOrderStore()
	s.Create(newTestOrder("ORD00000001"))

	executedAt := time.Now()
	if err := s.MarkFilled("ORD00000001", executedAt, 245050); err != nil {
		t.Fatalf("MarkFilled unexpected error: %v", err)
	}

	got, _ := s.Get("ORD00000001")
	if got.Status != domain.OrderStatusFilled {
		t.Fatalf("status = %s, want FILLED", got.Status)
	}
	if got.ExecutedPrice == nil || *got.ExecutedPrice != 245050 {
		t.Fatalf("executed price = %v, want 245050", got.ExecutedPrice)
	}
	if got.ExecutedAt == nil || !got.ExecutedAt.Equal(executedAt) {
		t.Fatalf("executed at = %v, want %v", got.ExecutedAt, executedAt)
	}
}

func TestOrderStore_StatusTransitionsAreOneWay(t *testing.T) {
	tests := []struct {
		name  string
		first func(s *OrderStore) error
	}{
		{"filled stays filled", func(s *OrderStore) error {
			return s.MarkFilled("ORD00000001", time.Now(), 100)
		}},
		{"rejected stays rejected", func(s *OrderStore) error {
			return s.MarkRejected("ORD00000001")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewOrderStore()
			s.Create(newTestOrder("ORD00000001"))

			if err := tt.first(s); err != nil {
				t.Fatalf("first transition failed: %v", err)
			}
			if err := s.MarkFilled("ORD00000001", time.Now(), 200); err != domain.ErrOrderNotExecutable {
				t.Fatalf("second MarkFilled error = %v, want ErrOrderNotExecutable", err)
			}
			if err := s.MarkRejected("ORD00000001"); err != domain.ErrOrderNotExecutable {
				t.Fatalf("second MarkRejected error = %v, want ErrOrderNotExecutable", err)
			}
		})
	}
}

func TestOrderStore_MarkFilled_NotFound(t *testing.T) {
	s := NewOrderStore()

	if err := s.MarkFilled("ORDMISSING", time.Now(), 100); err != domain.ErrOrderNotFound {
		t.Fatalf("MarkFilled error = %v, want ErrOrderNotFound", err)
	}
	if err := s.MarkRejected("ORDMISSING"); err != domain.ErrOrderNotFound {
		t.Fatalf("MarkRejected error = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderStore_ConcurrentCreateAndRead(t *testing.T) {
	s := NewOrderStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("ORD%08d", i)
			s.Create(newTestOrder(id))
			if _, err := s.Get(id); err != nil {
				t.Errorf("Get(%s) after Create failed: %v", id, err)
			}
			s.List()
		}(i)
	}
	wg.Wait()

	if got := len(s.List()); got != 50 {
		t.Fatalf("List() returned %d orders, want 50", got)
	}
}
