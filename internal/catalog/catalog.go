package catalog

import (
	"github.com/google/btree"

	"github.com/svmehta/papertrade/internal/domain"
)

// instrumentLess orders instruments by symbol ascending, then exchange
// ascending, so List returns a stable, sorted view.
func instrumentLess(a, b domain.Instrument) bool {
	if a.Symbol != b.Symbol {
		return a.Symbol < b.Symbol
	}
	return a.Exchange < b.Exchange
}

// Catalog is the static instrument catalog. It is populated once at
// construction and read-only afterwards, so concurrent lookups need no
// synchronization.
type Catalog struct {
	tree  *btree.BTreeG[domain.Instrument]
	index map[string]domain.Instrument // "SYMBOL_EXCHANGE" → instrument
}

// New builds a catalog from the given seed instruments. Later entries
// with the same (symbol, exchange) replace earlier ones.
func New(seed []domain.Instrument) *Catalog {
	const degree = 32
	c := &Catalog{
		tree:  btree.NewG[domain.Instrument](degree, instrumentLess),
		index: make(map[string]domain.Instrument, len(seed)),
	}
	for _, ins := range seed {
		c.tree.ReplaceOrInsert(ins)
		c.index[key(ins.Symbol, ins.Exchange)] = ins
	}
	return c
}

// Lookup returns the instrument for the given symbol and exchange.
// It returns domain.ErrInstrumentNotFound if no such instrument exists.
func (c *Catalog) Lookup(symbol, exchange string) (domain.Instrument, error) {
	ins, ok := c.index[key(symbol, exchange)]
	if !ok {
		return domain.Instrument{}, domain.ErrInstrumentNotFound
	}
	return ins, nil
}

// List returns all instruments ordered by (symbol, exchange).
func (c *Catalog) List() []domain.Instrument {
	result := make([]domain.Instrument, 0, c.tree.Len())
	c.tree.Ascend(func(ins domain.Instrument) bool {
		result = append(result, ins)
		return true
	})
	return result
}

// Len returns the number of instruments in the catalog.
func (c *Catalog) Len() int {
	return c.tree.Len()
}

func key(symbol, exchange string) string {
	return symbol + "_" + exchange
}
