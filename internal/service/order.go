package service

import (
	"fmt"
	"time"

	"github.com/svmehta/papertrade/internal/catalog"
	"github.com/svmehta/papertrade/internal/domain"
	"github.com/svmehta/papertrade/internal/engine"
	"github.com/svmehta/papertrade/internal/store"
)

// SubmitOrderRequest represents the input for order submission.
type SubmitOrderRequest struct {
	Symbol     string
	Exchange   string
	OrderType  domain.OrderType
	OrderStyle domain.OrderStyle
	Quantity   int64
	Price      *float64 // rupees; required for LIMIT orders
}

// OrderService validates order requests and drives them through the
// execution engine.
type OrderService struct {
	catalog    *catalog.Catalog
	orderStore *store.OrderStore
	eng        *engine.Engine
}

// NewOrderService creates a new OrderService with the given dependencies.
func NewOrderService(cat *catalog.Catalog, orderStore *store.OrderStore, eng *engine.Engine) *OrderService {
	return &OrderService{
		catalog:    cat,
		orderStore: orderStore,
		eng:        eng,
	}
}

// SubmitOrder validates the request, creates the order, and executes
// it synchronously. The returned order is terminal: FILLED on success,
// REJECTED (with the rejection error) when the engine refuses the fill.
// Pure validation failures and unknown instruments return an error
// before any order record exists.
//
// Validation rules, in order: required fields and positive quantity,
// LIMIT price presence, instrument existence. The sell-side holdings
// check runs inside the engine so it is atomic with the fill.
func (s *OrderService) SubmitOrder(req SubmitOrderRequest) (domain.Order, error) {
	if req.OrderType != domain.OrderTypeBuy && req.OrderType != domain.OrderTypeSell {
		return domain.Order{}, &domain.ValidationError{
			Message: fmt.Sprintf("Unknown order type: %s. Must be one of: BUY, SELL", req.OrderType),
		}
	}
	if req.OrderStyle != domain.OrderStyleMarket && req.OrderStyle != domain.OrderStyleLimit {
		return domain.Order{}, &domain.ValidationError{
			Message: fmt.Sprintf("Unknown order style: %s. Must be one of: MARKET, LIMIT", req.OrderStyle),
		}
	}
	if req.Symbol == "" {
		return domain.Order{}, &domain.ValidationError{Message: "symbol is required"}
	}
	if req.Exchange == "" {
		return domain.Order{}, &domain.ValidationError{Message: "exchange is required"}
	}
	if req.Quantity <= 0 {
		return domain.Order{}, &domain.ValidationError{Message: "quantity must be greater than 0"}
	}

	var pricePaise *int64
	if req.Price != nil {
		if *req.Price <= 0 {
			return domain.Order{}, &domain.ValidationError{Message: "price must be greater than 0"}
		}
		p, err := domain.RupeesToPaise(*req.Price)
		if err != nil {
			return domain.Order{}, &domain.ValidationError{Message: "price must have at most 2 decimal places"}
		}
		pricePaise = &p
	}
	if req.OrderStyle == domain.OrderStyleLimit && pricePaise == nil {
		return domain.Order{}, &domain.ValidationError{
			Message: "Price is mandatory for LIMIT orders and must be greater than 0",
		}
	}

	instrument, err := s.catalog.Lookup(req.Symbol, req.Exchange)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		OrderID:    engine.NewOrderID(),
		Symbol:     req.Symbol,
		Exchange:   req.Exchange,
		OrderType:  req.OrderType,
		OrderStyle: req.OrderStyle,
		Quantity:   req.Quantity,
		Price:      pricePaise,
		Status:     domain.OrderStatusNew,
		CreatedAt:  time.Now(),
	}
	s.orderStore.Create(order)

	if _, err := s.eng.Execute(order, instrument); err != nil {
		rejected, getErr := s.orderStore.Get(order.OrderID)
		if getErr != nil {
			return domain.Order{}, getErr
		}
		return rejected, err
	}

	return s.orderStore.Get(order.OrderID)
}

// GetOrder retrieves an order by ID.
func (s *OrderService) GetOrder(orderID string) (domain.Order, error) {
	return s.orderStore.Get(orderID)
}

// ListOrders returns all orders in submission order.
func (s *OrderService) ListOrders() []domain.Order {
	return s.orderStore.List()
}
