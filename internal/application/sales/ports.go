package sales

import (
	"context"

	"github.com/smartshoe/pos-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// La venta, sus líneas y las salidas de stock se confirman juntas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		inventoryRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}
