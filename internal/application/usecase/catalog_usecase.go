package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/domain"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/domain/repository"
)

// CatalogUseCase casos de uso para categorías y marcas.
type CatalogUseCase struct {
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
}

// NewCatalogUseCase construye el caso de uso de catálogo.
func NewCatalogUseCase(categoryRepo repository.CategoryRepository, brandRepo repository.BrandRepository) *CatalogUseCase {
	return &CatalogUseCase{categoryRepo: categoryRepo, brandRepo: brandRepo}
}

// CreateCategory crea una categoría. ErrDuplicate si el nombre ya existe.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.categoryRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// ListCategories lista las categorías ordenadas por nombre.
func (uc *CatalogUseCase) ListCategories() (*dto.CategoryListResponse, error) {
	list, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	categories := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		categories = append(categories, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Categories: categories}, nil
}

// DeleteCategory elimina una categoría por ID.
func (uc *CatalogUseCase) DeleteCategory(id string) error {
	return uc.categoryRepo.Delete(id)
}

// CreateBrand crea una marca. ErrDuplicate si el nombre ya existe.
func (uc *CatalogUseCase) CreateBrand(in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	existing, err := uc.brandRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	brand := &entity.Brand{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Country:   in.Country,
		CreatedAt: time.Now(),
	}
	if err := uc.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// ListBrands lista las marcas ordenadas por nombre.
func (uc *CatalogUseCase) ListBrands() (*dto.BrandListResponse, error) {
	list, err := uc.brandRepo.List()
	if err != nil {
		return nil, err
	}
	brands := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		brands = append(brands, *toBrandResponse(b))
	}
	return &dto.BrandListResponse{Brands: brands}, nil
}

// DeleteBrand elimina una marca por ID.
func (uc *CatalogUseCase) DeleteBrand(id string) error {
	return uc.brandRepo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	if b == nil {
		return nil
	}
	return &dto.BrandResponse{ID: b.ID, Name: b.Name, Country: b.Country}
}
