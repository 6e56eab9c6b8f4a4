package engine

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/svmehta/papertrade/internal/domain"
	"github.com/svmehta/papertrade/internal/ledger"
	"github.com/svmehta/papertrade/internal/store"
)

// testEngineEnv bundles the engine with its stores and ledger.
type testEngineEnv struct {
	orderStore *store.OrderStore
	tradeStore *store.TradeStore
	ledger     *ledger.Ledger
	eng        *Engine
}

func newTestEngineEnv() *testEngineEnv {
	os := store.NewOrderStore()
	ts := store.NewTradeStore()
	l := ledger.New()
	return &testEngineEnv{
		orderStore: os,
		tradeStore: ts,
		ledger:     l,
		eng:        New(os, ts, l),
	}
}

var testInstrument = domain.Instrument{
	Symbol:          "RELIANCE",
	Exchange:        "NSE",
	InstrumentType:  domain.InstrumentTypeEquity,
	LastTradedPrice: 245050,
}

// submitOrder creates a NEW order in the store and returns it.
func (env *testEngineEnv) submitOrder(orderType domain.OrderType, style domain.OrderStyle, qty int64, price *int64) domain.Order {
	o := domain.Order{
		OrderID:    NewOrderID(),
		Symbol:     testInstrument.Symbol,
		Exchange:   testInstrument.Exchange,
		OrderType:  orderType,
		OrderStyle: style,
		Quantity:   qty,
		Price:      price,
		Status:     domain.OrderStatusNew,
		CreatedAt:  time.Now(),
	}
	env.orderStore.Create(o)
	return o
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestExecute_MarketBuy_FillsAtLastTradedPrice(t *testing.T) {
	env := newTestEngineEnv()
	order := env.submitOrder(domain.OrderTypeBuy, domain.OrderStyleMarket, 10, nil)

	trade, err := env.eng.Execute(order, testInstrument)
	if err != nil {
		t.Fatalf("Execute unexpected error: %v", err)
	}
	if trade.Price != testInstrument.LastTradedPrice {
		t.Fatalf("trade price = %d, want %d", trade.Price, testInstrument.LastTradedPrice)
	}
	if trade.Quantity != 10 {
		t.Fatalf("trade quantity = %d, want 10", trade.Quantity)
	}

	got, _ := env.orderStore.Get(order.OrderID)
	if got.Status != domain.OrderStatusFilled {
		t.Fatalf("order status = %s, want FILLED", got.Status)
	}
	if got.ExecutedPrice == nil || *got.ExecutedPrice != testInstrument.LastTradedPrice {
		t.Fatalf("executed price = %v, want %d", got.ExecutedPrice, testInstrument.LastTradedPrice)
	}
	if env.ledger.Quantity("RELIANCE", "NSE") != 10 {
		t.Fatalf("holding = %d, want 10", env.ledger.Quantity("RELIANCE", "NSE"))
	}
}

func TestExecute_LimitBuy_FillsAtLimitPrice(t *testing.T) {
	env := newTestEngineEnv()
	order := env.submitOrder(domain.OrderTypeBuy, domain.OrderStyleLimit, 5, int64Ptr(240000))

	trade, err := env.eng.Execute(order, testInstrument)
	if err != nil {
		t.Fatalf("Execute unexpected error: %v", err)
	}
	if trade.Price != 240000 {
		t.Fatalf("trade price = %d, want the limit price 240000", trade.Price)
	}
}

func TestExecute_EveryFilledOrderHasExactlyOneTrade(t *testing.T) {
	env := newTestEngineEnv()

	for i := 0; i < 5; i++ {
		order := env.submitOrder(domain.OrderTypeBuy, domain.OrderStyleMarket, 2, nil)
		if _, err := env.eng.Execute(order, testInstrument); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
	}

	trades := env.tradeStore.List()
	if len(trades) != 5 {
		t.Fatalf("expected 5 trades, got %d", len(trades))
	}
	seen := make(map[string]bool)
	for _, tr := range trades {
		if seen[tr.OrderID] {
			t.Fatalf("order %s has more than one trade", tr.OrderID)
		}
		seen[tr.OrderID] = true
		if tr.Symbol != "RELIANCE" || tr.Quantity != 2 {
			t.Fatalf("trade does not match its order: %+v", tr)
		}
	}
}

func TestExecute_SellWithoutHoldings_Rejects(t *testing.T) {
	env := newTestEngineEnv()
	order := env.submitOrder(domain.OrderTypeSell, domain.OrderStyleMarket, 10, nil)

	_, err := env.eng.Execute(order, testInstrument)
	if err != domain.ErrInsufficientHoldings {
		t.Fatalf("Execute error = %v, want ErrInsufficientHoldings", err)
	}

	got, _ := env.orderStore.Get(order.OrderID)
	if got.Status != domain.OrderStatusRejected {
		t.Fatalf("order status = %s, want REJECTED", got.Status)
	}
	if env.tradeStore.Len() != 0 {
		t.Fatal("rejected order produced a trade")
	}
	if env.ledger.Quantity("RELIANCE", "NSE") != 0 {
		t.Fatal("rejected order mutated the ledger")
	}
}

func TestExecute_FailsClosedOnBypassedPreconditions(t *testing.T) {
	tests := []struct {
		name  string
		order func(env *testEngineEnv) domain.Order
	}{
		{"non-positive quantity", func(env *testEngineEnv) domain.Order {
			return env.submitOrder(domain.OrderTypeBuy, domain.OrderStyleMarket, 0, nil)
		}},
		{"limit without price", func(env *testEngineEnv) domain.Order {
			return env.submitOrder(domain.OrderTypeBuy, domain.OrderStyleLimit, 5, nil)
		}},
		{"limit with non-positive price", func(env *testEngineEnv) domain.Order {
			return env.submitOrder(domain.OrderTypeBuy, domain.OrderStyleLimit, 5, int64Ptr(0))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEngineEnv()
			order := tt.order(env)

			_, err := env.eng.Execute(order, testInstrument)
			if err == nil {
				t.Fatal("Execute accepted an invalid order")
			}

			got, _ := env.orderStore.Get(order.OrderID)
			if got.Status != domain.OrderStatusRejected {
				t.Fatalf("order status = %s, want REJECTED", got.Status)
			}
			if env.tradeStore.Len() != 0 {
				t.Fatal("invalid order produced a trade")
			}
		})
	}
}

func TestExecute_MismatchedInstrument_Rejects(t *testing.T) {
	env := newTestEngineEnv()
	order := env.submitOrder(domain.OrderTypeBuy, domain.OrderStyleMarket, 10, nil)

	other := domain.Instrument{Symbol: "TCS", Exchange: "NSE", InstrumentType: domain.InstrumentTypeEquity, LastTradedPrice: 345075}
	_, err := env.eng.Execute(order, other)
	if err != domain.ErrInstrumentNotFound {
		t.Fatalf("Execute error = %v, want ErrInstrumentNotFound", err)
	}
}

func TestExecute_ConcurrentSellsCannotOverdraw(t *testing.T) {
	env := newTestEngineEnv()

	// Seed a holding of 10 via a buy.
	buy := env.submitOrder(domain.OrderTypeBuy, domain.OrderStyleMarket, 10, nil)
	if _, err := env.eng.Execute(buy, testInstrument); err != nil {
		t.Fatalf("seed buy failed: %v", err)
	}

	// 20 concurrent sells of 10 each: at most one can succeed.
	const sellers = 20
	var wg sync.WaitGroup
	errs := make([]error, sellers)
	orders := make([]domain.Order, sellers)

	for i := 0; i < sellers; i++ {
		orders[i] = env.submitOrder(domain.OrderTypeSell, domain.OrderStyleMarket, 10, nil)
	}
	for i := 0; i < sellers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.eng.Execute(orders[i], testInstrument)
		}(i)
	}
	wg.Wait()

	var filled, rejected int
	for i, err := range errs {
		switch err {
		case nil:
			filled++
		case domain.ErrInsufficientHoldings:
			rejected++
			got, _ := env.orderStore.Get(orders[i].OrderID)
			if got.Status != domain.OrderStatusRejected {
				t.Fatalf("losing sell has status %s, want REJECTED", got.Status)
			}
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if filled != 1 {
		t.Fatalf("%d sells filled, want exactly 1", filled)
	}
	if rejected != sellers-1 {
		t.Fatalf("%d sells rejected, want %d", rejected, sellers-1)
	}
	if got := env.ledger.Quantity("RELIANCE", "NSE"); got != 0 {
		t.Fatalf("final holding = %d, want 0", got)
	}
}

func TestOrderAndTradeIDFormat(t *testing.T) {
	orderID := NewOrderID()
	tradeID := newTradeID()

	for _, tc := range []struct {
		id     string
		prefix string
	}{
		{orderID, "ORD"},
		{tradeID, "TRD"},
	} {
		if !strings.HasPrefix(tc.id, tc.prefix) {
			t.Fatalf("id %q missing prefix %s", tc.id, tc.prefix)
		}
		suffix := strings.TrimPrefix(tc.id, tc.prefix)
		if len(suffix) != 8 {
			t.Fatalf("id %q suffix length = %d, want 8", tc.id, len(suffix))
		}
		if suffix != strings.ToUpper(suffix) {
			t.Fatalf("id %q suffix is not uppercase", tc.id)
		}
	}

	if NewOrderID() == NewOrderID() {
		t.Fatal("consecutive order IDs collided")
	}
}
