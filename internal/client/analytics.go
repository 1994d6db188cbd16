package client

import (
	"context"
	"net/http"

	"github.com/smartshoe/pos-api/internal/application/dto"
)

// DashboardService lecturas del dashboard.
type DashboardService struct {
	session *Session
}

// Stats devuelve el resumen completo del dashboard.
func (s *DashboardService) Stats(ctx context.Context) (*dto.DashboardResponse, error) {
	var out dto.DashboardResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SalesTrend devuelve la serie de los últimos 7 días.
func (s *DashboardService) SalesTrend(ctx context.Context) (*dto.SalesTrendResponse, error) {
	var out dto.SalesTrendResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/dashboard/sales-trend", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LowStock devuelve los productos bajo el umbral.
func (s *DashboardService) LowStock(ctx context.Context) (*dto.LowStockResponse, error) {
	var out dto.LowStockResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/dashboard/low-stock", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportsService reportes de ventas e inventario.
type ReportsService struct {
	session *Session
}

// Overview totales históricos y del mes más las metas.
func (s *ReportsService) Overview(ctx context.Context) (*dto.SalesOverviewResponse, error) {
	var out dto.SalesOverviewResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/sales/analytics/overview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Trend series diaria y mensual con metas.
func (s *ReportsService) Trend(ctx context.Context) (*dto.SalesTrendResponse, error) {
	var out dto.SalesTrendResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/sales/analytics/trend", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories ingresos por categoría.
func (s *ReportsService) Categories(ctx context.Context) ([]dto.CategorySalesPoint, error) {
	var out []dto.CategorySalesPoint
	if err := s.session.do(ctx, http.MethodGet, "/api/sales/analytics/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Brands ingresos y unidades por marca.
func (s *ReportsService) Brands(ctx context.Context) ([]dto.BrandSalesPoint, error) {
	var out []dto.BrandSalesPoint
	if err := s.session.do(ctx, http.MethodGet, "/api/sales/analytics/brands", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopProducts productos con mayor ingreso.
func (s *ReportsService) TopProducts(ctx context.Context) ([]dto.TopProductPoint, error) {
	var out []dto.TopProductPoint
	if err := s.session.do(ctx, http.MethodGet, "/api/sales/analytics/top-products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Inventory reporte de inventario valorizado.
func (s *ReportsService) Inventory(ctx context.Context) (*dto.InventoryReportResponse, error) {
	var out dto.InventoryReportResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/sales/analytics/inventory", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
