package client

import (
	"context"
	"net/http"

	"github.com/smartshoe/pos-api/internal/application/dto"
)

// ProductsService CRUD de productos.
type ProductsService struct {
	session *Session
}

// List lista todos los productos con stock actual.
func (s *ProductsService) List(ctx context.Context) (*dto.ProductListResponse, error) {
	var out dto.ProductListResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get obtiene un producto por ID.
func (s *ProductsService) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea un producto.
func (s *ProductsService) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductCreatedResponse, error) {
	var out dto.ProductCreatedResponse
	if err := s.session.do(ctx, http.MethodPost, "/api/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update actualiza los campos enviados.
func (s *ProductsService) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductCreatedResponse, error) {
	var out dto.ProductCreatedResponse
	if err := s.session.do(ctx, http.MethodPut, "/api/products/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un producto. El backend rechaza si aún tiene stock.
func (s *ProductsService) Delete(ctx context.Context, id string) error {
	return s.session.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}
