// Package pdf genera la factura imprimible del punto de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SMARTSHOE  │  N° Factura + Fecha                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: cliente (Walk-in Customer por defecto) + tipo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | P.Unit | Total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto (opcional) / TOTAL            │
//	│  FOOTER: método de pago + leyenda                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/smartshoe/pos-api/internal/pos"
)

const storeName = "SMARTSHOE"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// moneyPrinter separador de miles para los montos (KES 12,500.00).
var moneyPrinter = message.NewPrinter(language.English)

// InvoiceRenderer genera el PDF de la factura usando Maroto v2. Renderiza
// cualquier pos.Invoice, incluso con campos faltantes: los fallbacks ya
// vienen resueltos en el modelo de vista.
type InvoiceRenderer struct{}

// NewInvoiceRenderer construye el renderer.
func NewInvoiceRenderer() *InvoiceRenderer { return &InvoiceRenderer{} }

// Render genera el PDF y devuelve sus bytes.
func (r *InvoiceRenderer) Render(invoice *pos.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(invoice.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))
	m.AddRows(footerRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar factura: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq), número de factura y fecha (der).
func headerRow(invoice *pos.Invoice) core.Row {
	date := invoice.Date
	if date.IsZero() {
		date = time.Now()
	}
	number := invoice.InvoiceNumber
	if number == "" {
		number = "—"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Shoe Retail & Wholesale", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// billToRow: cliente y tipo de venta.
func billToRow(invoice *pos.Invoice) core.Row {
	customer := invoice.CustomerName
	if customer == "" {
		customer = pos.FallbackCustomerName
	}
	saleType := invoice.SaleType
	if saleType == "" {
		saleType = "retail"
	}
	return row.New(12).Add(
		col.New(8).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
		col.New(4).Add(
			text.New("Sale type", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(saleType, props.Text{Size: 9, Align: align.Right, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de artículos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Item", 6, align.Left),
		h("Unit Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// itemRows: una fila por línea; sin líneas imprime el aviso de vacío.
func itemRows(lines []pos.InvoiceLine) []core.Row {
	if len(lines) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("No items found", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		))}
	}
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		desc := l.Description
		if desc == "" {
			desc = pos.FallbackProductName
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(l.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: subtotal, impuesto opcional y total.
func totalsRow(invoice *pos.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	labels := []core.Component{label("Subtotal:")}
	values := []core.Component{value("KES " + formatMoney(invoice.Subtotal))}
	if invoice.TaxRate.IsPositive() {
		labels = append(labels, label(fmt.Sprintf("Tax (%s%%):", invoice.TaxRate.StringFixed(0))))
		values = append(values, value("KES "+formatMoney(invoice.Tax)))
	}
	labels = append(labels, text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right,
		Color: colorPrimary, Right: 2, Top: 10,
	}))
	values = append(values, text.New("KES "+formatMoney(invoice.Total), props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right,
		Color: colorPrimary, Right: 1, Top: 10,
	}))

	return row.New(24).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

// footerRow: método de pago y leyenda de agradecimiento.
func footerRow(invoice *pos.Invoice) core.Row {
	payment := invoice.PaymentMethod
	if payment == "" {
		payment = pos.FallbackPayment
	}
	return row.New(14).Add(col.New(12).Add(
		text.New("Payment method: "+payment, props.Text{Size: 8, Top: 2, Color: colorGray}),
		text.New("Thank you for shopping with us!", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorPrimary, Top: 8,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney dos decimales con separador de miles. Valores inválidos
// imprimen "0.00", nunca se propaga un NaN.
func formatMoney(d decimal.Decimal) string {
	f := d.InexactFloat64()
	if f != f { // NaN
		return "0.00"
	}
	return moneyPrinter.Sprintf("%.2f", f)
}
