package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. SKU es opcional:
// si no se envía, el use case lo genera a partir de marca y categoría.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=100"`
	Brand          string          `json:"brand" validate:"required,min=1,max=50"`
	Category       string          `json:"category" validate:"required,min=1,max=50"`
	Size           string          `json:"size" validate:"required,max=20"`
	Color          string          `json:"color" validate:"required,max=30"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	Supplier       string          `json:"supplier" validate:"max=100"`
	SKU            string          `json:"sku" validate:"omitempty,max=50"`
}

// UpdateProductRequest entrada para actualizar un producto. El stock no se
// toca aquí: solo cambia vía stock-in o ventas.
type UpdateProductRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Brand          *string          `json:"brand" validate:"omitempty,min=1,max=50"`
	Category       *string          `json:"category" validate:"omitempty,min=1,max=50"`
	Size           *string          `json:"size" validate:"omitempty,max=20"`
	Color          *string          `json:"color" validate:"omitempty,max=30"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	RetailPrice    *decimal.Decimal `json:"retail_price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	Supplier       *string          `json:"supplier" validate:"omitempty,max=100"`
}

// ProductResponse salida de un producto con su stock actual derivado.
type ProductResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Category       string          `json:"category"`
	Size           string          `json:"size"`
	Color          string          `json:"color"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	Supplier       string          `json:"supplier"`
	CurrentStock   int             `json:"current_stock"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos: {products: [...], count: n}.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
}

// ProductCreatedResponse envoltura de creación/actualización con mensaje.
type ProductCreatedResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}
