package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un zapato del catálogo (un SKU por combinación
// modelo/talla/color). CurrentStock es derivado: suma de entradas menos
// salidas en inventory_transactions; nunca se escribe directamente.
type Product struct {
	ID             string
	SKU            string // código único, generado si no se envía
	Name           string
	Brand          string
	Category       string
	Size           string
	Color          string
	PurchasePrice  decimal.Decimal
	RetailPrice    decimal.Decimal // precio al detal
	WholesalePrice decimal.Decimal // precio al por mayor
	Supplier       string
	CurrentStock   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
