// Package analytics contiene los casos de uso del dashboard y los reportes
// de ventas e inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/domain/repository"
)

const (
	dashboardRecentSales = 5 // ventas recientes en el widget del dashboard
	dashboardTrendDays   = 7
)

// DashboardUseCase genera el resumen del día y del mes en curso más el
// estado del inventario.
type DashboardUseCase struct {
	analyticsRepo     repository.AnalyticsRepository
	saleRepo          repository.SaleRepository
	productRepo       repository.ProductRepository
	lowStockThreshold int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	lowStockThreshold int,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo:     analyticsRepo,
		saleRepo:          saleRepo,
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// GetSummary construye el DashboardResponse.
//
// Cuatro llamadas en paralelo:
//  1. GetSalesTotals(hoy)   → TodaySales + TodayCount
//  2. GetSalesTotals(mes)   → MonthSales + MonthCount
//  3. ListRecent(5)         → RecentSales
//  4. List productos        → stock total, items con stock bajo, valor
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// ── Goroutines para paralelizar las 4 consultas DB ────────────────────────
	type totalsResult struct {
		totals repository.SalesTotals
		err    error
	}
	type salesResult struct {
		sales []*entity.Sale
		err   error
	}
	type productsResult struct {
		products []*entity.Product
		err      error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	recentCh := make(chan salesResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		t, err := uc.analyticsRepo.GetSalesTotals(ctx, todayStart, todayEnd)
		todayCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.GetSalesTotals(ctx, monthStart, todayEnd)
		monthCh <- totalsResult{t, err}
	}()
	go func() {
		s, err := uc.saleRepo.ListRecent(dashboardRecentSales)
		recentCh <- salesResult{s, err}
	}()
	go func() {
		p, err := uc.productRepo.List()
		productsCh <- productsResult{p, err}
	}()

	today := <-todayCh
	month := <-monthCh
	recent := <-recentCh
	products := <-productsCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recent.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}

	// ── Estado del inventario ─────────────────────────────────────────────────
	totalStock := 0
	inventoryValue := decimal.Zero
	var lowStock []dto.LowStockItem
	for _, p := range products.products {
		totalStock += p.CurrentStock
		inventoryValue = inventoryValue.Add(p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock))))
		if p.CurrentStock < uc.lowStockThreshold {
			lowStock = append(lowStock, dto.LowStockItem{
				ID:           p.ID,
				SKU:          p.SKU,
				Name:         p.Name,
				Brand:        p.Brand,
				Size:         p.Size,
				CurrentStock: p.CurrentStock,
			})
		}
	}

	recentSales := make([]dto.SaleResponse, 0, len(recent.sales))
	for _, s := range recent.sales {
		recentSales = append(recentSales, dto.SaleResponse{
			ID:            s.ID,
			InvoiceNumber: s.InvoiceNumber,
			SaleType:      s.SaleType,
			TotalAmount:   s.TotalAmount,
			PaymentMethod: s.PaymentMethod,
			CustomerName:  s.CustomerName,
			ItemsCount:    s.ItemsCount,
			CreatedAt:     s.CreatedAt,
		})
	}
	if lowStock == nil {
		lowStock = []dto.LowStockItem{}
	}

	dash := &dto.DashboardResponse{
		TotalProducts:  len(products.products),
		TotalStock:     totalStock,
		LowStockCount:  len(lowStock),
		TodaySales:     today.totals.TotalAmount.Round(2),
		TodayCount:     today.totals.Transactions,
		MonthSales:     month.totals.TotalAmount.Round(2),
		MonthCount:     month.totals.Transactions,
		RecentSales:    recentSales,
		LowStockItems:  lowStock,
		InventoryValue: inventoryValue.Round(2),
	}
	return dash, nil
}

// GetSalesTrend devuelve la serie de ventas de los últimos 7 días para la
// gráfica del dashboard.
func (uc *DashboardUseCase) GetSalesTrend(ctx context.Context) (*dto.SalesTrendResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := todayStart.AddDate(0, 0, -(dashboardTrendDays - 1))
	end := todayStart.Add(24 * time.Hour)

	daily, err := uc.analyticsRepo.GetDailySales(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("dashboard: tendencia de ventas: %w", err)
	}
	trend := &dto.SalesTrendResponse{Daily: make([]dto.DailySalesPoint, 0, len(daily))}
	for _, d := range daily {
		trend.Daily = append(trend.Daily, dto.DailySalesPoint{
			Date:  d.Day.Format("2006-01-02"),
			Total: d.Total.Round(2),
		})
	}
	return trend, nil
}

// GetLowStock devuelve los productos bajo el umbral de stock mínimo.
func (uc *DashboardUseCase) GetLowStock(ctx context.Context) (*dto.LowStockResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", err)
	}
	items := []dto.LowStockItem{}
	for _, p := range products {
		if p.CurrentStock < uc.lowStockThreshold {
			items = append(items, dto.LowStockItem{
				ID:           p.ID,
				SKU:          p.SKU,
				Name:         p.Name,
				Brand:        p.Brand,
				Size:         p.Size,
				CurrentStock: p.CurrentStock,
			})
		}
	}
	return &dto.LowStockResponse{Items: items, Count: len(items)}, nil
}
