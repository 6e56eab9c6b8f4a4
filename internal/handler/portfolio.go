package handler

import (
	"net/http"
	"time"

	"github.com/svmehta/papertrade/internal/domain"
	"github.com/svmehta/papertrade/internal/service"
)

// PortfolioHandler handles HTTP requests for trade and portfolio
// endpoints.
type PortfolioHandler struct {
	portfolioSvc *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioSvc *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioSvc: portfolioSvc}
}

// tradeResponse is a single trade in the list response.
type tradeResponse struct {
	TradeID    string  `json:"tradeId"`
	OrderID    string  `json:"orderId"`
	Symbol     string  `json:"symbol"`
	Exchange   string  `json:"exchange"`
	OrderType  string  `json:"orderType"`
	Quantity   int64   `json:"quantity"`
	Price      float64 `json:"price"`
	ExecutedAt string  `json:"executedAt"`
}

// holdingResponse is a single holding in the portfolio response.
type holdingResponse struct {
	Symbol       string  `json:"symbol"`
	Exchange     string  `json:"exchange"`
	Quantity     int64   `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
	CurrentValue float64 `json:"currentValue"`
}

// ListTrades handles GET /api/v1/trades.
func (h *PortfolioHandler) ListTrades(w http.ResponseWriter, r *http.Request) {
	trades := h.portfolioSvc.ListTrades()

	result := make([]tradeResponse, len(trades))
	for i, t := range trades {
		result[i] = tradeResponse{
			TradeID:    t.TradeID,
			OrderID:    t.OrderID,
			Symbol:     t.Symbol,
			Exchange:   t.Exchange,
			OrderType:  string(t.OrderType),
			Quantity:   t.Quantity,
			Price:      domain.PaiseToRupees(t.Price),
			ExecutedAt: t.ExecutedAt.UTC().Format(time.RFC3339),
		}
	}

	WriteJSON(w, http.StatusOK, result)
}

// GetPortfolio handles GET /api/v1/portfolio.
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	holdings := h.portfolioSvc.GetHoldings()

	result := make([]holdingResponse, len(holdings))
	for i, hld := range holdings {
		result[i] = holdingResponse{
			Symbol:       hld.Symbol,
			Exchange:     hld.Exchange,
			Quantity:     hld.Quantity,
			AveragePrice: domain.PaiseToRupees(hld.AveragePrice),
			CurrentValue: domain.PaiseToRupees(hld.CurrentValue),
		}
	}

	WriteJSON(w, http.StatusOK, result)
}
