package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/domain"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/domain/repository"
)

// InventoryUseCase casos de uso del libro de inventario: entradas de stock
// y listado de movimientos. Las salidas las escribe el flujo de ventas.
type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso de inventario.
func NewInventoryUseCase(inventoryRepo repository.InventoryRepository, productRepo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{inventoryRepo: inventoryRepo, productRepo: productRepo}
}

// StockIn registra una entrada de stock y devuelve el stock resultante.
func (uc *InventoryUseCase) StockIn(in dto.StockInRequest) (*dto.StockInResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	batch := in.BatchNumber
	if batch == "" {
		batch = "BATCH-001"
	}
	tx := &entity.InventoryTransaction{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        entity.TxTypeIn,
		Quantity:    in.Quantity,
		BatchNumber: batch,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	if err := uc.inventoryRepo.Create(tx); err != nil {
		return nil, err
	}
	return &dto.StockInResponse{
		Message:       "Entrada de stock registrada",
		TransactionID: tx.ID,
		ProductName:   product.Name,
		NewStock:      product.CurrentStock + in.Quantity,
	}, nil
}

// ListTransactions lista los últimos movimientos del libro.
func (uc *InventoryUseCase) ListTransactions(limit int) (*dto.InventoryTransactionListResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	list, err := uc.inventoryRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	transactions := make([]dto.InventoryTransactionResponse, 0, len(list))
	for _, t := range list {
		transactions = append(transactions, dto.InventoryTransactionResponse{
			ID:              t.ID,
			ProductID:       t.ProductID,
			ProductName:     t.ProductName,
			TransactionType: t.Type,
			Quantity:        t.Quantity,
			BatchNumber:     t.BatchNumber,
			Notes:           t.Notes,
			CreatedAt:       t.CreatedAt,
		})
	}
	return &dto.InventoryTransactionListResponse{
		Transactions: transactions,
		Count:        len(transactions),
	}, nil
}
