package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/svmehta/papertrade/internal/domain"
	"github.com/svmehta/papertrade/internal/service"
)

// OrderHandler handles HTTP requests for order endpoints.
type OrderHandler struct {
	orderSvc *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc *service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// createOrderRequest is the JSON request body for POST /api/v1/orders.
type createOrderRequest struct {
	Symbol     string   `json:"symbol"`
	Exchange   string   `json:"exchange"`
	OrderType  string   `json:"orderType"`
	OrderStyle string   `json:"orderStyle"`
	Quantity   int64    `json:"quantity"`
	Price      *float64 `json:"price"`
}

// orderResponse is the JSON representation of an order. Nullable
// fields use pointers.
type orderResponse struct {
	OrderID       string   `json:"orderId"`
	Symbol        string   `json:"symbol"`
	Exchange      string   `json:"exchange"`
	OrderType     string   `json:"orderType"`
	OrderStyle    string   `json:"orderStyle"`
	Quantity      int64    `json:"quantity"`
	Price         *float64 `json:"price"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"createdAt"`
	ExecutedAt    *string  `json:"executedAt"`
	ExecutedPrice *float64 `json:"executedPrice"`
}

// SubmitOrder handles POST /api/v1/orders.
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusUnprocessableEntity, "ValidationError", err.Error())
		return
	}

	order, err := h.orderSvc.SubmitOrder(service.SubmitOrderRequest{
		Symbol:     req.Symbol,
		Exchange:   req.Exchange,
		OrderType:  domain.OrderType(req.OrderType),
		OrderStyle: domain.OrderStyle(req.OrderStyle),
		Quantity:   req.Quantity,
		Price:      req.Price,
	})
	if err != nil {
		mapOrderError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, buildOrderResponse(order))
}

// GetOrder handles GET /api/v1/orders/{order_id}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orderSvc.GetOrder(orderID)
	if err != nil {
		mapOrderError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildOrderResponse(order))
}

// ListOrders handles GET /api/v1/orders.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orderSvc.ListOrders()

	result := make([]orderResponse, len(orders))
	for i, o := range orders {
		result[i] = buildOrderResponse(o)
	}

	WriteJSON(w, http.StatusOK, result)
}

// buildOrderResponse converts a domain order to its JSON form.
func buildOrderResponse(o domain.Order) orderResponse {
	resp := orderResponse{
		OrderID:    o.OrderID,
		Symbol:     o.Symbol,
		Exchange:   o.Exchange,
		OrderType:  string(o.OrderType),
		OrderStyle: string(o.OrderStyle),
		Quantity:   o.Quantity,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339),
	}
	if o.Price != nil {
		p := domain.PaiseToRupees(*o.Price)
		resp.Price = &p
	}
	if o.ExecutedAt != nil {
		s := o.ExecutedAt.UTC().Format(time.RFC3339)
		resp.ExecutedAt = &s
	}
	if o.ExecutedPrice != nil {
		p := domain.PaiseToRupees(*o.ExecutedPrice)
		resp.ExecutedPrice = &p
	}
	return resp
}

// mapOrderError maps domain errors to HTTP responses for order
// endpoints.
func mapOrderError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, http.StatusUnprocessableEntity, "ValidationError", validationErr.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrInstrumentNotFound):
		WriteError(w, http.StatusNotFound, "InstrumentNotFoundError", "Instrument not found")
	case errors.Is(err, domain.ErrOrderNotFound):
		WriteError(w, http.StatusNotFound, "OrderNotFoundError", "Order not found")
	case errors.Is(err, domain.ErrInsufficientHoldings):
		WriteError(w, http.StatusBadRequest, "InsufficientHoldingError", "Insufficient holdings for requested quantity")
	default:
		WriteError(w, http.StatusInternalServerError, "InternalServerError", "An unexpected error occurred")
	}
}
