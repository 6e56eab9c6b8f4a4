package handler

import (
	"net/http"

	"github.com/svmehta/papertrade/internal/domain"
	"github.com/svmehta/papertrade/internal/service"
)

// InstrumentHandler handles HTTP requests for instrument endpoints.
type InstrumentHandler struct {
	instrumentSvc *service.InstrumentService
}

// NewInstrumentHandler creates a new InstrumentHandler.
func NewInstrumentHandler(instrumentSvc *service.InstrumentService) *InstrumentHandler {
	return &InstrumentHandler{instrumentSvc: instrumentSvc}
}

// instrumentResponse is a single instrument in the list response.
type instrumentResponse struct {
	Symbol          string  `json:"symbol"`
	Exchange        string  `json:"exchange"`
	InstrumentType  string  `json:"instrumentType"`
	LastTradedPrice float64 `json:"lastTradedPrice"`
}

// ListInstruments handles GET /api/v1/instruments.
func (h *InstrumentHandler) ListInstruments(w http.ResponseWriter, r *http.Request) {
	instruments := h.instrumentSvc.ListInstruments()

	result := make([]instrumentResponse, len(instruments))
	for i, ins := range instruments {
		result[i] = instrumentResponse{
			Symbol:          ins.Symbol,
			Exchange:        ins.Exchange,
			InstrumentType:  string(ins.InstrumentType),
			LastTradedPrice: domain.PaiseToRupees(ins.LastTradedPrice),
		}
	}

	WriteJSON(w, http.StatusOK, result)
}
