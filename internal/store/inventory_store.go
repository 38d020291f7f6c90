package store

import (
	"sync"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/pkg/entity"
)

// InventoryStore holds the facility-side collections: waste stock per
// category and the sales ledger.
type InventoryStore struct {
	mu         sync.RWMutex
	stock      []entity.WasteStock
	sales      []entity.SalesTransaction
	nextSaleID int64
}

func NewInventoryStore(stock []entity.WasteStock, sales []entity.SalesTransaction) *InventoryStore {
	is := &InventoryStore{
		stock:      make([]entity.WasteStock, len(stock)),
		sales:      make([]entity.SalesTransaction, len(sales)),
		nextSaleID: 1,
	}
	copy(is.stock, stock)
	copy(is.sales, sales)
	for _, t := range sales {
		if t.ID >= is.nextSaleID {
			is.nextSaleID = t.ID + 1
		}
	}
	return is
}

func (is *InventoryStore) Stock() []entity.WasteStock {
	is.mu.RLock()
	defer is.mu.RUnlock()
	out := make([]entity.WasteStock, len(is.stock))
	copy(out, is.stock)
	return out
}

func (is *InventoryStore) StockByCategory(cat entity.WasteCategory) (entity.WasteStock, error) {
	is.mu.RLock()
	defer is.mu.RUnlock()
	for _, s := range is.stock {
		if s.Category == cat {
			return s, nil
		}
	}
	return entity.WasteStock{}, errorvalues.ErrStockNotFound
}

func (is *InventoryStore) UpdateStock(s entity.WasteStock) error {
	is.mu.Lock()
	defer is.mu.Unlock()
	for i := range is.stock {
		if is.stock[i].ID == s.ID {
			is.stock[i] = s
			return nil
		}
	}
	return errorvalues.ErrStockNotFound
}

func (is *InventoryStore) Sales() []entity.SalesTransaction {
	is.mu.RLock()
	defer is.mu.RUnlock()
	out := make([]entity.SalesTransaction, len(is.sales))
	copy(out, is.sales)
	return out
}

func (is *InventoryStore) InsertSale(t entity.SalesTransaction) entity.SalesTransaction {
	is.mu.Lock()
	defer is.mu.Unlock()
	t.ID = is.nextSaleID
	is.nextSaleID++
	is.sales = append(is.sales, t)
	return t
}
