package entity

import "time"

// Tipos de transacción de inventario.
const (
	TxTypeIn  = "in"  // entrada de stock (compra/reposición)
	TxTypeOut = "out" // salida de stock (venta)
)

// InventoryTransaction es el libro mayor del stock: cada entrada o salida
// queda registrada y el stock actual de un producto se deriva sumando.
type InventoryTransaction struct {
	ID          string
	ProductID   string
	Type        string // in | out
	Quantity    int    // siempre positivo; el signo lo da Type
	BatchNumber string
	Notes       string
	CreatedAt   time.Time
}
