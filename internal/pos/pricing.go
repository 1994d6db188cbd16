// Package pos implementa el flujo de venta del punto de venta: carrito en
// memoria, envío de la venta al backend y modelo de vista de la factura.
package pos

import (
	"github.com/shopspring/decimal"
	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/domain/entity"
)

// ResolvePrice devuelve el precio unitario aplicable según el tipo de venta.
// Función pura: wholesale cobra precio mayorista, cualquier otro tipo retail.
func ResolvePrice(product *dto.ProductResponse, saleType string) decimal.Decimal {
	if saleType == entity.SaleTypeWholesale {
		return product.WholesalePrice
	}
	return product.RetailPrice
}
