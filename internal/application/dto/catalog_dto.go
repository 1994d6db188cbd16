package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"max=200"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryListResponse lista: {categories: [...]}.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryCreatedResponse envoltura de creación.
type CategoryCreatedResponse struct {
	Message  string           `json:"message"`
	Category CategoryResponse `json:"category"`
}

// CreateBrandRequest entrada para crear una marca.
type CreateBrandRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=50"`
	Country string `json:"country" validate:"max=50"`
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// BrandListResponse lista: {brands: [...]}.
type BrandListResponse struct {
	Brands []BrandResponse `json:"brands"`
}

// BrandCreatedResponse envoltura de creación.
type BrandCreatedResponse struct {
	Message string        `json:"message"`
	Brand   BrandResponse `json:"brand"`
}
