package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartshoe/pos-api/internal/application/dto"
	appsales "github.com/smartshoe/pos-api/internal/application/sales"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/infrastructure/pdf"
	apphttp "github.com/smartshoe/pos-api/internal/interfaces/http"
)

// memSaleRepo repo de ventas en memoria con una venta precargada.
type memSaleRepo struct {
	sales map[string]*entity.Sale
	items map[string][]*entity.SaleItem
}

func newMemSaleRepo() *memSaleRepo {
	created := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	return &memSaleRepo{
		sales: map[string]*entity.Sale{
			"s-1": {
				ID:            "s-1",
				InvoiceNumber: "INV-20260831-AABBCC",
				SaleType:      entity.SaleTypeRetail,
				TotalAmount:   decimal.NewFromInt(200),
				PaymentMethod: "cash",
				CustomerName:  "Juan Pérez",
				CreatedAt:     created,
				ItemsCount:    1,
			},
		},
		items: map[string][]*entity.SaleItem{
			"s-1": {{
				ID:          "i-1",
				SaleID:      "s-1",
				Position:    1,
				ProductID:   "p-1",
				ProductName: "Air Max 90",
				Brand:       "Nike",
				Size:        "42",
				Color:       "White",
				Quantity:    2,
				UnitPrice:   decimal.NewFromInt(100),
				Subtotal:    decimal.NewFromInt(200),
			}},
		},
	}
}

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.sales[sale.ID] = sale
	return nil
}

func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.items[item.SaleID] = append(r.items[item.SaleID], item)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *memSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	return r.items[saleID], nil
}

func (r *memSaleRepo) ListRecent(limit int) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

// buildSalesApp monta los endpoints de historial y factura sin middleware
// de auth, para probar los handlers aislados.
func buildSalesApp() *fiber.App {
	handler := apphttp.NewSaleHandler(
		nil, // Create no se ejercita aquí
		appsales.NewSalesUseCase(newMemSaleRepo()),
		pdf.NewInvoiceRenderer(),
	)
	app := fiber.New()
	app.Get("/sales", handler.List)
	app.Get("/sales/:id", handler.GetByID)
	app.Get("/sales/:id/invoice", handler.Invoice)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleList_DevuelveElHistorial(t *testing.T) {
	app := buildSalesApp()
	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.SaleListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "INV-20260831-AABBCC", body.Sales[0].InvoiceNumber)
	assert.Equal(t, 1, body.Sales[0].ItemsCount)
}

func TestSaleDetail_ConLineas(t *testing.T) {
	app := buildSalesApp()
	req := httptest.NewRequest(http.MethodGet, "/sales/s-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.SaleDetailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Juan Pérez", body.Sale.CustomerName)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Air Max 90", body.Items[0].ProductName)
}

func TestSaleDetail_Inexistente_404(t *testing.T) {
	app := buildSalesApp()
	req := httptest.NewRequest(http.MethodGet, "/sales/fantasma", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

// ──────────────────────────────────────────────────────────────────────────────
// Factura PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleInvoice_RespondePDF(t *testing.T) {
	app := buildSalesApp()
	req := httptest.NewRequest(http.MethodGet, "/sales/s-1/invoice", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "INV-20260831-AABBCC")

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"),
		"el cuerpo debe ser un documento PDF")
}

func TestSaleInvoice_VentaInexistente_404(t *testing.T) {
	app := buildSalesApp()
	req := httptest.NewRequest(http.MethodGet, "/sales/fantasma/invoice", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
