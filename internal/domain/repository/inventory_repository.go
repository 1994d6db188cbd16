package repository

import "github.com/smartshoe/pos-api/internal/domain/entity"

// InventoryTransactionWithProduct transacción con el nombre del producto
// resuelto por JOIN, para el listado de movimientos.
type InventoryTransactionWithProduct struct {
	entity.InventoryTransaction
	ProductName string
}

// InventoryRepository define el puerto de persistencia para el libro de
// inventario. El stock actual nunca se escribe: se deriva de estas filas.
type InventoryRepository interface {
	Create(tx *entity.InventoryTransaction) error
	ListRecent(limit int) ([]*InventoryTransactionWithProduct, error)
	// CurrentStock devuelve sum(in) - sum(out) para el producto.
	CurrentStock(productID string) (int, error)
}
