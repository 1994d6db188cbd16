package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/smartshoe/pos-api/internal/application/dto"
)

// SalesService creación de ventas, historial y factura imprimible.
// CreateSale satisface pos.SaleCreator.
type SalesService struct {
	session *Session
}

// CreateSale confirma la venta. Exactamente una llamada, sin reintentos.
func (s *SalesService) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	var out dto.CreateSaleResponse
	if err := s.session.do(ctx, http.MethodPost, "/api/sales", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List lista las últimas ventas. limit <= 0 usa el default del servidor.
func (s *SalesService) List(ctx context.Context, limit int) (*dto.SaleListResponse, error) {
	path := "/api/sales"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out dto.SaleListResponse
	if err := s.session.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get obtiene el detalle de una venta con sus líneas.
func (s *SalesService) Get(ctx context.Context, id string) (*dto.SaleDetailResponse, error) {
	var out dto.SaleDetailResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/sales/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InvoicePDF descarga la factura imprimible en PDF.
func (s *SalesService) InvoicePDF(ctx context.Context, id string) ([]byte, error) {
	return s.session.doRaw(ctx, http.MethodGet, "/api/sales/"+id+"/invoice")
}
