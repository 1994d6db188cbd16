package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea del carrito al confirmar la venta. UnitPrice es
// informativo: el servidor resuelve el precio autoritativo por tipo de venta.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest entrada para confirmar una venta completa.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	SaleType      string            `json:"sale_type" validate:"required,oneof=retail wholesale"`
	PaymentMethod string            `json:"payment_method" validate:"required,max=30"`
	CustomerName  string            `json:"customer_name" validate:"max=100"`
}

// CreateSaleResponse confirmación de la venta registrada.
type CreateSaleResponse struct {
	Message       string          `json:"message"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	SaleID        string          `json:"sale_id"`
}

// SaleResponse una venta en el historial (sin sus líneas).
type SaleResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	SaleType      string          `json:"sale_type"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	CustomerName  string          `json:"customer_name"`
	ItemsCount    int             `json:"items_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleListResponse lista: {sales: [...], count: n}.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Count int            `json:"count"`
}

// SaleItemResponse una línea de la venta con el snapshot del producto.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Brand       string          `json:"brand"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleDetailResponse venta completa con sus líneas, para el detalle y la factura.
type SaleDetailResponse struct {
	Sale  SaleResponse       `json:"sale"`
	Items []SaleItemResponse `json:"items"`
}
