package dto

import "time"

// StockInRequest entrada de stock para un producto.
type StockInRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	BatchNumber string `json:"batch_number" validate:"max=50"`
	Notes       string `json:"notes" validate:"max=200"`
}

// StockInResponse confirmación con el stock resultante del producto.
type StockInResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
	ProductName   string `json:"product_name"`
	NewStock      int    `json:"new_stock"`
}

// InventoryTransactionResponse una fila del libro de inventario.
type InventoryTransactionResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	TransactionType string    `json:"transaction_type"`
	Quantity        int       `json:"quantity"`
	BatchNumber     string    `json:"batch_number"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// InventoryTransactionListResponse lista: {transactions: [...], count: n}.
type InventoryTransactionListResponse struct {
	Transactions []InventoryTransactionResponse `json:"transactions"`
	Count        int                            `json:"count"`
}
