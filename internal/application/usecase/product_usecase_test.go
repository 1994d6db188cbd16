package usecase_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/application/usecase"
	"github.com/smartshoe/pos-api/internal/domain"
	"github.com/smartshoe/pos-api/internal/domain/entity"
)

// memProductRepo repo de productos en memoria, indexado por ID y SKU.
type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
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

// failingSKURepo simula una DB caída en la consulta de duplicados.
type failingSKURepo struct {
	*memProductRepo
	err error
}

func (r *failingSKURepo) GetBySKU(string) (*entity.Product, error) {
	return nil, r.err
}

var skuPattern = regexp.MustCompile(`^NIK-SNE-[0-9A-F]{6}$`)

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_SinSKU_GeneraUno(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		Name:        "Air Max 90",
		Brand:       "Nike",
		Category:    "Sneakers",
		Size:        "42",
		Color:       "White",
		RetailPrice: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	assert.Regexp(t, skuPattern, out.SKU,
		"el SKU se genera con prefijos de marca y categoría")
	assert.Equal(t, 0, out.CurrentStock, "un producto nuevo nace sin stock")
}

func TestProductCreate_SKUDuplicado_Rechazado(t *testing.T) {
	repo := newMemProductRepo(&entity.Product{ID: "p-1", SKU: "NIK-SNE-AAAAAA"})
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:     "Air Max 90",
		Brand:    "Nike",
		Category: "Sneakers",
		Size:     "42",
		Color:    "White",
		SKU:      "NIK-SNE-AAAAAA",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecioNegativo_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		Name:        "Air Max 90",
		Brand:       "Nike",
		Category:    "Sneakers",
		Size:        "42",
		Color:       "White",
		RetailPrice: decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un fallo de DB al consultar el SKU no puede leerse como "no hay duplicado":
// el error se propaga y nada se crea.
func TestProductCreate_FallaLaConsultaDeSKU_PropagaElError(t *testing.T) {
	dbErr := errors.New("conexión perdida")
	repo := &failingSKURepo{memProductRepo: newMemProductRepo(), err: dbErr}
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:     "Air Max 90",
		Brand:    "Nike",
		Category: "Sneakers",
		Size:     "42",
		Color:    "White",
	})
	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, repo.byID, "nada queda creado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_SoloLosCamposEnviados(t *testing.T) {
	repo := newMemProductRepo(&entity.Product{
		ID:          "p-1",
		SKU:         "NIK-SNE-AAAAAA",
		Name:        "Air Max 90",
		Brand:       "Nike",
		RetailPrice: decimal.NewFromInt(100),
	})
	uc := usecase.NewProductUseCase(repo)

	newPrice := decimal.NewFromInt(120)
	out, err := uc.Update("p-1", dto.UpdateProductRequest{RetailPrice: &newPrice})
	require.NoError(t, err)

	assert.True(t, out.RetailPrice.Equal(newPrice))
	assert.Equal(t, "Air Max 90", out.Name, "los campos no enviados no cambian")
	assert.Equal(t, "Nike", out.Brand)
}

func TestProductUpdate_Inexistente_ErrNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Update("fantasma", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_ConStock_Rechazado(t *testing.T) {
	repo := newMemProductRepo(&entity.Product{ID: "p-1", CurrentStock: 3})
	uc := usecase.NewProductUseCase(repo)

	err := uc.Delete("p-1")
	assert.ErrorIs(t, err, domain.ErrStockNotEmpty,
		"no se borra un producto con unidades en inventario")
	assert.NotNil(t, repo.byID["p-1"], "el producto sigue existiendo")
}

func TestProductDelete_SinStock_Eliminado(t *testing.T) {
	repo := newMemProductRepo(&entity.Product{ID: "p-1", CurrentStock: 0})
	uc := usecase.NewProductUseCase(repo)

	require.NoError(t, uc.Delete("p-1"))
	assert.Nil(t, repo.byID["p-1"])
}

func TestProductDelete_Inexistente_ErrNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	assert.ErrorIs(t, uc.Delete("fantasma"), domain.ErrNotFound)
}
