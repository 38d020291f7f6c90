package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/internal/store"
	"github.com/eresik/eresik/pkg/entity"
)

type RecordSaleInput struct {
	Category   entity.WasteCategory `validate:"required"`
	WeightKg   float64              `validate:"required,gt=0"`
	PricePerKg int64                `validate:"required,gt=0"`
	Buyer      string               `validate:"required,max=100"`
}

// InventoryService covers the facility-manager side: stock per category and
// the sales ledger.
type InventoryService struct {
	repo store.InventoryStoreI
}

func NewInventoryService(inventoryStore store.InventoryStoreI) *InventoryService {
	if inventoryStore == nil {
		log.Fatal("provided nil inventoryStore")
	}
	return &InventoryService{
		repo: inventoryStore,
	}
}

func (is *InventoryService) Stock(ctx context.Context) ([]entity.WasteStock, error) {
	return is.repo.Stock(), nil
}

func (is *InventoryService) Sales(ctx context.Context) ([]entity.SalesTransaction, error) {
	return is.repo.Sales(), nil
}

// RecordSale books a sale against the category's stock. The sold weight is
// taken out of the stock row and its market value recomputed.
func (is *InventoryService) RecordSale(ctx context.Context, input *RecordSaleInput) (entity.SalesTransaction, error) {
	err := validate.Struct(*input)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return entity.SalesTransaction{}, err
		}
		return entity.SalesTransaction{}, errors.New("validation unexpected error: " + err.Error())
	}
	stock, err := is.repo.StockByCategory(input.Category)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStockNotFound) {
			return entity.SalesTransaction{}, err
		}
		return entity.SalesTransaction{}, errors.New("inventory store error: " + err.Error())
	}
	if stock.WeightKg < input.WeightKg {
		return entity.SalesTransaction{}, errorvalues.ErrInsufficientStock
	}

	now := time.Now().UTC()
	stock.WeightKg -= input.WeightKg
	stock.TotalValue = int64(math.Round(stock.WeightKg * float64(stock.PricePerKg)))
	stock.LastUpdated = now
	if err := is.repo.UpdateStock(stock); err != nil {
		return entity.SalesTransaction{}, errors.New("inventory store error: " + err.Error())
	}

	sale := is.repo.InsertSale(entity.SalesTransaction{
		Date:        now,
		Category:    input.Category,
		WeightKg:    input.WeightKg,
		PricePerKg:  input.PricePerKg,
		TotalAmount: int64(math.Round(input.WeightKg * float64(input.PricePerKg))),
		Buyer:       input.Buyer,
		Status:      entity.SaleCompleted,
	})
	return sale, nil
}
