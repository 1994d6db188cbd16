package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/application/usecase"
	"github.com/smartshoe/pos-api/internal/domain"
	"github.com/smartshoe/pos-api/internal/domain/entity"
)

// Repos de catálogo en memoria. El error configurable simula una DB caída
// en la consulta de duplicados.

type memCategoryRepo struct {
	byName    map[string]*entity.Category
	lookupErr error
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	r.byName[c.Name] = c
	return nil
}

func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	return r.byName[name], nil
}

func (r *memCategoryRepo) List() ([]*entity.Category, error) { return nil, nil }
func (r *memCategoryRepo) Delete(string) error               { return nil }

type memBrandRepo struct {
	byName    map[string]*entity.Brand
	lookupErr error
}

func (r *memBrandRepo) Create(b *entity.Brand) error {
	r.byName[b.Name] = b
	return nil
}

func (r *memBrandRepo) GetByName(name string) (*entity.Brand, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	return r.byName[name], nil
}

func (r *memBrandRepo) List() ([]*entity.Brand, error) { return nil, nil }
func (r *memBrandRepo) Delete(string) error            { return nil }

func newCatalogUC(catErr, brandErr error) (*usecase.CatalogUseCase, *memCategoryRepo, *memBrandRepo) {
	catRepo := &memCategoryRepo{byName: make(map[string]*entity.Category), lookupErr: catErr}
	brandRepo := &memBrandRepo{byName: make(map[string]*entity.Brand), lookupErr: brandErr}
	return usecase.NewCatalogUseCase(catRepo, brandRepo), catRepo, brandRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogCreateCategory_Duplicada_ErrDuplicate(t *testing.T) {
	uc, _, _ := newCatalogUC(nil, nil)

	_, err := uc.CreateCategory(dto.CreateCategoryRequest{Name: "Sneakers"})
	require.NoError(t, err)

	_, err = uc.CreateCategory(dto.CreateCategoryRequest{Name: "Sneakers"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCatalogCreateCategory_FallaLaConsulta_PropagaElError(t *testing.T) {
	dbErr := errors.New("conexión perdida")
	uc, catRepo, _ := newCatalogUC(dbErr, nil)

	_, err := uc.CreateCategory(dto.CreateCategoryRequest{Name: "Sneakers"})
	assert.ErrorIs(t, err, dbErr, "un fallo de DB no se lee como 'no hay duplicado'")
	assert.Empty(t, catRepo.byName, "nada queda creado")
}

func TestCatalogCreateBrand_FallaLaConsulta_PropagaElError(t *testing.T) {
	dbErr := errors.New("conexión perdida")
	uc, _, brandRepo := newCatalogUC(nil, dbErr)

	_, err := uc.CreateBrand(dto.CreateBrandRequest{Name: "Nike"})
	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, brandRepo.byName)
}
