package pos

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartshoe/pos-api/internal/application/dto"
)

// Fallbacks de la factura. El sistema nunca inventa un nombre de cliente
// real: sin cliente conocido se imprime el genérico de mostrador.
const (
	FallbackProductName   = "Unknown Product"
	FallbackCustomerName  = "Walk-in Customer"
	FallbackPayment       = "Cash"
	FallbackPaymentMethod = "cash" // valor por defecto en el request de venta
)

// InvoiceLine una línea imprimible de la factura.
type InvoiceLine struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Invoice modelo de vista de la factura, listo para imprimir. Se construye
// fresco en cada impresión y nunca se persiste. Subtotal y Total salen de
// las líneas; el impuesto es opcional (tasa 0 = sin impuesto).
type Invoice struct {
	InvoiceNumber string
	Date          time.Time
	SaleType      string
	CustomerName  string
	PaymentMethod string
	Lines         []InvoiceLine
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal // porcentaje
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

// InvoiceFromSubmission arma la factura de una venta recién confirmada:
// número de factura del servidor más el snapshot de líneas del cliente.
func InvoiceFromSubmission(resp *dto.CreateSaleResponse, lines []Line, saleType, paymentMethod, customerName string) *Invoice {
	inv := &Invoice{
		Date:          time.Now(),
		SaleType:      saleType,
		CustomerName:  fallbackString(customerName, FallbackCustomerName),
		PaymentMethod: fallbackString(paymentMethod, FallbackPayment),
	}
	if resp != nil {
		inv.InvoiceNumber = resp.InvoiceNumber
	}
	for _, line := range lines {
		inv.Lines = append(inv.Lines, InvoiceLine{
			Description: describeLine(line.ProductName, line.Brand, line.Size, line.Color),
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal(),
		})
	}
	inv.computeTotals()
	return inv
}

// InvoiceFromDetail arma la factura para reimprimir una venta ya registrada.
// Sin líneas imprime cero filas y total 0.00, nunca falla.
func InvoiceFromDetail(detail *dto.SaleDetailResponse) *Invoice {
	inv := &Invoice{}
	if detail == nil {
		inv.CustomerName = FallbackCustomerName
		inv.PaymentMethod = FallbackPayment
		inv.Date = time.Now()
		inv.computeTotals()
		return inv
	}
	inv.InvoiceNumber = detail.Sale.InvoiceNumber
	inv.SaleType = detail.Sale.SaleType
	inv.CustomerName = fallbackString(detail.Sale.CustomerName, FallbackCustomerName)
	inv.PaymentMethod = fallbackString(detail.Sale.PaymentMethod, FallbackPayment)
	inv.Date = detail.Sale.CreatedAt
	if inv.Date.IsZero() {
		inv.Date = time.Now()
	}
	for _, item := range detail.Items {
		inv.Lines = append(inv.Lines, InvoiceLine{
			Description: describeLine(item.ProductName, item.Brand, item.Size, item.Color),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	inv.computeTotals()
	return inv
}

// InvoiceFromSummary arma una factura de una sola línea cuando no hay
// detalle por artículo, solo los campos de resumen de la venta.
func InvoiceFromSummary(sale *dto.SaleResponse) *Invoice {
	inv := &Invoice{
		CustomerName:  FallbackCustomerName,
		PaymentMethod: FallbackPayment,
		Date:          time.Now(),
	}
	if sale == nil {
		inv.computeTotals()
		return inv
	}
	inv.InvoiceNumber = sale.InvoiceNumber
	inv.SaleType = sale.SaleType
	inv.CustomerName = fallbackString(sale.CustomerName, FallbackCustomerName)
	inv.PaymentMethod = fallbackString(sale.PaymentMethod, FallbackPayment)
	if !sale.CreatedAt.IsZero() {
		inv.Date = sale.CreatedAt
	}
	quantity := sale.ItemsCount
	if quantity <= 0 {
		quantity = 0
	}
	inv.Lines = append(inv.Lines, InvoiceLine{
		Description: fmt.Sprintf("Venta de %d artículos", sale.ItemsCount),
		Quantity:    quantity,
		UnitPrice:   sale.TotalAmount,
		Subtotal:    sale.TotalAmount,
	})
	inv.computeTotals()
	return inv
}

// ApplyTax aplica una tasa porcentual al subtotal y recalcula el total.
// Tasa cero o negativa deja la factura sin impuesto.
func (inv *Invoice) ApplyTax(rate decimal.Decimal) {
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	inv.TaxRate = rate
	inv.computeTotals()
}

func (inv *Invoice) computeTotals() {
	subtotal := decimal.Zero
	for _, line := range inv.Lines {
		subtotal = subtotal.Add(line.Subtotal)
	}
	inv.Subtotal = subtotal
	inv.Tax = subtotal.Mul(inv.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	inv.Total = subtotal.Add(inv.Tax)
}

// FormatAmount formatea un monto con dos decimales para impresión.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// describeLine compone la descripción imprimible de la línea:
// "Nombre - Marca (Talla, Color)" con fallback si falta el nombre.
func describeLine(name, brand, size, color string) string {
	if name == "" {
		name = FallbackProductName
	}
	desc := name
	if brand != "" {
		desc += " - " + brand
	}
	if size != "" || color != "" {
		desc += " (" + size
		if color != "" {
			if size != "" {
				desc += ", "
			}
			desc += color
		}
		desc += ")"
	}
	return desc
}

func fallbackString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
