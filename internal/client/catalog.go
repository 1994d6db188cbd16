package client

import (
	"context"
	"net/http"

	"github.com/smartshoe/pos-api/internal/application/dto"
)

// CatalogService categorías y marcas.
type CatalogService struct {
	session *Session
}

// ListCategories lista las categorías.
func (s *CatalogService) ListCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	var out dto.CategoryListResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory crea una categoría.
func (s *CatalogService) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryCreatedResponse, error) {
	var out dto.CategoryCreatedResponse
	if err := s.session.do(ctx, http.MethodPost, "/api/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory elimina una categoría.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.session.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil)
}

// ListBrands lista las marcas.
func (s *CatalogService) ListBrands(ctx context.Context) (*dto.BrandListResponse, error) {
	var out dto.BrandListResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/brands", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBrand crea una marca.
func (s *CatalogService) CreateBrand(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandCreatedResponse, error) {
	var out dto.BrandCreatedResponse
	if err := s.session.do(ctx, http.MethodPost, "/api/brands", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBrand elimina una marca.
func (s *CatalogService) DeleteBrand(ctx context.Context, id string) error {
	return s.session.do(ctx, http.MethodDelete, "/api/brands/"+id, nil, nil)
}
