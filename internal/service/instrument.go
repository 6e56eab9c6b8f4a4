package service

import (
	"github.com/svmehta/papertrade/internal/catalog"
	"github.com/svmehta/papertrade/internal/domain"
)

// InstrumentService answers read queries over the instrument catalog.
type InstrumentService struct {
	catalog *catalog.Catalog
}

// NewInstrumentService creates a new InstrumentService.
func NewInstrumentService(cat *catalog.Catalog) *InstrumentService {
	return &InstrumentService{catalog: cat}
}

// ListInstruments returns all tradable instruments ordered by
// (symbol, exchange).
func (s *InstrumentService) ListInstruments() []domain.Instrument {
	return s.catalog.List()
}
