package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/domain"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock nunca se edita
// directo: solo cambia con entradas de inventario y ventas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con stock 0. Si no viene SKU, se genera uno
// a partir de marca y categoría (ej. NIK-RUN-3F2A1B).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = generateSKU(in.Brand, in.Category)
	}
	existing, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.RetailPrice.IsNegative() || in.WholesalePrice.IsNegative() || in.PurchasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		SKU:            sku,
		Name:           in.Name,
		Brand:          in.Brand,
		Category:       in.Category,
		Size:           in.Size,
		Color:          in.Color,
		PurchasePrice:  in.PurchasePrice,
		RetailPrice:    in.RetailPrice,
		WholesalePrice: in.WholesalePrice,
		Supplier:       in.Supplier,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID con su stock actual.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos enviados. El stock no se modifica aquí.
// ErrNotFound si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Size != nil {
		product.Size = *in.Size
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.RetailPrice != nil {
		if in.RetailPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.RetailPrice = *in.RetailPrice
	}
	if in.WholesalePrice != nil {
		if in.WholesalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.WholesalePrice = *in.WholesalePrice
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos con stock derivado.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		products = append(products, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Products: products,
		Count:    len(products),
	}, nil
}

// Delete elimina un producto. Rechaza con ErrStockNotEmpty si aún hay
// unidades: primero hay que darles salida.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CurrentStock > 0 {
		return domain.ErrStockNotEmpty
	}
	return uc.repo.Delete(id)
}

// generateSKU genera un SKU legible: 3 letras de marca, 3 de categoría y
// un sufijo aleatorio (ej. NIK-RUN-3F2A1B).
func generateSKU(brand, category string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%s", skuPrefix(brand), skuPrefix(category), suffix)
}

func skuPrefix(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	if len(s) < 3 {
		s = s + strings.Repeat("X", 3-len(s))
	}
	return s[:3]
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Brand:          p.Brand,
		Category:       p.Category,
		Size:           p.Size,
		Color:          p.Color,
		PurchasePrice:  p.PurchasePrice,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		Supplier:       p.Supplier,
		CurrentStock:   p.CurrentStock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
