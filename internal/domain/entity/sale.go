package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta: determinan qué precio del producto aplica a cada línea.
const (
	SaleTypeRetail    = "retail"
	SaleTypeWholesale = "wholesale"
)

// Sale es una venta confirmada. Inmutable una vez creada: el número de
// factura y el total los asigna el servidor al momento de la venta.
type Sale struct {
	ID            string
	InvoiceNumber string
	SaleType      string // retail | wholesale
	TotalAmount   decimal.Decimal
	PaymentMethod string
	CustomerName  string
	CreatedAt     time.Time
	ItemsCount    int
}

// SaleItem es una línea vendida con el snapshot del producto al momento de
// la venta (nombre/marca/talla/color), para que la factura pueda reimprimirse
// aunque el producto cambie o se elimine después.
type SaleItem struct {
	ID          string
	SaleID      string
	Position    int // orden de la línea dentro de la venta, desde 1
	ProductID   string
	ProductName string
	Brand       string
	Size        string
	Color       string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
