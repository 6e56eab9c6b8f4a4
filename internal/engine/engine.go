package engine

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/svmehta/papertrade/internal/domain"
	"github.com/svmehta/papertrade/internal/ledger"
	"github.com/svmehta/papertrade/internal/store"
)

// Engine executes validated orders synchronously: every accepted order
// fills in full, immediately, at the instrument's last traded price
// (MARKET) or the order's own price (LIMIT). There is no book and no
// matching against other orders.
type Engine struct {
	orderStore *store.OrderStore
	tradeStore *store.TradeStore
	ledger     *ledger.Ledger
	locks      *keyLocks
}

// New creates an Engine over the given stores and ledger.
func New(orderStore *store.OrderStore, tradeStore *store.TradeStore, ledg *ledger.Ledger) *Engine {
	return &Engine{
		orderStore: orderStore,
		tradeStore: tradeStore,
		ledger:     ledg,
		locks:      newKeyLocks(),
	}
}

// NewOrderID generates an order ID in the form "ORD" + 8 uppercase hex
// characters.
func NewOrderID() string {
	return "ORD" + shortHex()
}

// newTradeID generates a trade ID in the form "TRD" + 8 uppercase hex
// characters.
func newTradeID() string {
	return "TRD" + shortHex()
}

func shortHex() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:4]))
}

// Execute fills the order against the instrument and returns the
// resulting trade. The holdings check and the fill are performed under
// a per-(symbol, exchange) lock, so concurrent sells on the same
// instrument cannot jointly overdraw the holding.
//
// Validator preconditions are re-checked under the lock; any violation
// fails closed: the order is marked REJECTED, the ledger is left
// untouched, and the domain error is returned.
func (e *Engine) Execute(order domain.Order, instrument domain.Instrument) (domain.Trade, error) {
	lock := e.locks.GetOrCreate(order.Symbol + "_" + order.Exchange)
	lock.Lock()
	defer lock.Unlock()

	if err := e.checkExecutable(order, instrument); err != nil {
		if mErr := e.orderStore.MarkRejected(order.OrderID); mErr != nil {
			return domain.Trade{}, mErr
		}
		return domain.Trade{}, err
	}

	price := instrument.LastTradedPrice
	if order.OrderStyle == domain.OrderStyleLimit {
		price = *order.Price
	}

	if err := e.ledger.ApplyFill(order.Symbol, order.Exchange, order.OrderType, order.Quantity, price); err != nil {
		if mErr := e.orderStore.MarkRejected(order.OrderID); mErr != nil {
			return domain.Trade{}, mErr
		}
		return domain.Trade{}, err
	}

	executedAt := time.Now()
	trade := domain.Trade{
		TradeID:    newTradeID(),
		OrderID:    order.OrderID,
		Symbol:     order.Symbol,
		Exchange:   order.Exchange,
		OrderType:  order.OrderType,
		Quantity:   order.Quantity,
		Price:      price,
		ExecutedAt: executedAt,
	}
	e.tradeStore.Append(trade)

	if err := e.orderStore.MarkFilled(order.OrderID, executedAt, price); err != nil {
		return domain.Trade{}, err
	}

	return trade, nil
}

// checkExecutable re-validates preconditions under the instrument
// lock. The service layer already checked fields and instrument
// existence; the sell-side holdings check lives here because it must
// be atomic with the fill.
func (e *Engine) checkExecutable(order domain.Order, instrument domain.Instrument) error {
	if order.Symbol != instrument.Symbol || order.Exchange != instrument.Exchange {
		return domain.ErrInstrumentNotFound
	}
	if order.Quantity <= 0 {
		return &domain.ValidationError{Message: "quantity must be a positive integer"}
	}
	if order.OrderStyle == domain.OrderStyleLimit && (order.Price == nil || *order.Price <= 0) {
		return &domain.ValidationError{Message: "price is mandatory for LIMIT orders and must be greater than 0"}
	}
	if order.OrderType == domain.OrderTypeSell {
		if e.ledger.Quantity(order.Symbol, order.Exchange) < order.Quantity {
			return domain.ErrInsufficientHoldings
		}
	}
	return nil
}
