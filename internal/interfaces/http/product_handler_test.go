package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/application/usecase"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	apphttp "github.com/smartshoe/pos-api/internal/interfaces/http"
)

// memProductRepo repo de productos en memoria para probar el handler.
type memProductRepo struct {
	byID map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// buildProductApp monta el CRUD de productos sin middleware de auth, con un
// producto precargado.
func buildProductApp() *fiber.App {
	repo := &memProductRepo{byID: map[string]*entity.Product{
		"p-1": {
			ID:          "p-1",
			SKU:         "NIK-SNE-AAAAAA",
			Name:        "Air Max 90",
			Brand:       "Nike",
			RetailPrice: decimal.NewFromInt(100),
		},
	}}
	handler := apphttp.NewProductHandler(usecase.NewProductUseCase(repo))
	app := fiber.New()
	app.Get("/products/:id", handler.GetByID)
	app.Put("/products/:id", handler.Update)
	return app
}

func putJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_Existente_DevuelveMensajeYProducto(t *testing.T) {
	app := buildProductApp()
	resp := putJSON(t, app, "/products/p-1", `{"name":"Air Max 95"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.ProductCreatedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Producto actualizado exitosamente", body.Message)
	assert.Equal(t, "Air Max 95", body.Product.Name)
}

func TestProductUpdate_Inexistente_404(t *testing.T) {
	app := buildProductApp()
	resp := putJSON(t, app, "/products/fantasma", `{"name":"Air Max 95"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}
