package pos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/pos"
)

// ──────────────────────────────────────────────────────────────────────────────
// InvoiceFromDetail
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceFromDetail_VentaCompleta(t *testing.T) {
	created := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	detail := &dto.SaleDetailResponse{
		Sale: dto.SaleResponse{
			InvoiceNumber: "INV-20260831-A1B2C3",
			SaleType:      entity.SaleTypeRetail,
			PaymentMethod: "mpesa",
			CustomerName:  "María López",
			CreatedAt:     created,
		},
		Items: []dto.SaleItemResponse{
			{ProductName: "Air Max 90", Brand: "Nike", Size: "42", Color: "White",
				Quantity: 2, UnitPrice: decimal.NewFromInt(100), Subtotal: decimal.NewFromInt(200)},
			{ProductName: "Suede Classic", Brand: "Puma", Size: "41", Color: "Navy",
				Quantity: 1, UnitPrice: decimal.NewFromInt(60), Subtotal: decimal.NewFromInt(60)},
		},
	}

	inv := pos.InvoiceFromDetail(detail)

	assert.Equal(t, "INV-20260831-A1B2C3", inv.InvoiceNumber)
	assert.Equal(t, "María López", inv.CustomerName)
	assert.Equal(t, "mpesa", inv.PaymentMethod)
	assert.Equal(t, created, inv.Date)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, "Air Max 90 - Nike (42, White)", inv.Lines[0].Description)
	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(260)))
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(260)), "sin impuesto total = subtotal")
}

// Los campos faltantes no rompen la factura: se imprime con los genéricos.
func TestInvoiceFromDetail_CamposFaltantes_UsaFallbacks(t *testing.T) {
	detail := &dto.SaleDetailResponse{
		Sale: dto.SaleResponse{InvoiceNumber: "INV-X"},
		Items: []dto.SaleItemResponse{
			{Quantity: 1, UnitPrice: decimal.NewFromInt(50), Subtotal: decimal.NewFromInt(50)},
		},
	}

	inv := pos.InvoiceFromDetail(detail)

	assert.Equal(t, pos.FallbackCustomerName, inv.CustomerName)
	assert.Equal(t, pos.FallbackPayment, inv.PaymentMethod)
	assert.False(t, inv.Date.IsZero(), "sin fecha se usa la actual")
	assert.Equal(t, pos.FallbackProductName, inv.Lines[0].Description,
		"línea sin nombre imprime el genérico")
}

// Una venta sin líneas renderiza total 0.00: el total SIEMPRE sale de las
// líneas, nunca del encabezado.
func TestInvoiceFromDetail_SinLineas_TotalCero(t *testing.T) {
	detail := &dto.SaleDetailResponse{
		Sale: dto.SaleResponse{
			InvoiceNumber: "INV-HUERFANA",
			TotalAmount:   decimal.NewFromInt(9999),
		},
	}

	inv := pos.InvoiceFromDetail(detail)

	assert.Empty(t, inv.Lines)
	assert.Equal(t, "0.00", pos.FormatAmount(inv.Total),
		"el monto del encabezado se ignora si no hay líneas")
}

func TestInvoiceFromDetail_Nil_NoFalla(t *testing.T) {
	inv := pos.InvoiceFromDetail(nil)
	assert.Equal(t, pos.FallbackCustomerName, inv.CustomerName)
	assert.True(t, inv.Total.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// InvoiceFromSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceFromSummary_LineaSintetica(t *testing.T) {
	sale := &dto.SaleResponse{
		InvoiceNumber: "INV-Y",
		TotalAmount:   decimal.NewFromInt(500),
		ItemsCount:    3,
	}

	inv := pos.InvoiceFromSummary(sale)

	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "Venta de 3 artículos", inv.Lines[0].Description)
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(500)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Impuesto opcional
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyTax_RecalculaTotales(t *testing.T) {
	inv := &pos.Invoice{Lines: []pos.InvoiceLine{
		{Quantity: 1, UnitPrice: decimal.NewFromInt(200), Subtotal: decimal.NewFromInt(200)},
	}}

	inv.ApplyTax(decimal.NewFromInt(16))

	assert.Equal(t, "32.00", pos.FormatAmount(inv.Tax), "16% de 200")
	assert.Equal(t, "232.00", pos.FormatAmount(inv.Total))

	inv.ApplyTax(decimal.Zero)
	assert.Equal(t, "0.00", pos.FormatAmount(inv.Tax), "tasa cero quita el impuesto")
	assert.Equal(t, "200.00", pos.FormatAmount(inv.Total))
}

func TestApplyTax_TasaNegativa_SeTrataComoCero(t *testing.T) {
	inv := &pos.Invoice{Lines: []pos.InvoiceLine{
		{Quantity: 1, UnitPrice: decimal.NewFromInt(100), Subtotal: decimal.NewFromInt(100)},
	}}

	inv.ApplyTax(decimal.NewFromInt(-5))

	assert.True(t, inv.TaxRate.IsZero())
	assert.Equal(t, "100.00", pos.FormatAmount(inv.Total))
}
