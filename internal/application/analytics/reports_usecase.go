package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartshoe/pos-api/internal/application/dto"
	"github.com/smartshoe/pos-api/internal/domain/repository"
	"github.com/smartshoe/pos-api/internal/infrastructure/cache"
)

const (
	reportCacheTTL     = 30 * time.Second
	salesReportKey     = "reports:sales"
	inventoryReportKey = "reports:inventory"

	reportDailyDays    = 30
	reportMonthlyCount = 12
	reportTopLimit     = 10
)

// Targets metas de ventas para las series del reporte.
type Targets struct {
	Monthly decimal.Decimal
	Daily   decimal.Decimal
}

// ReportsUseCase genera los reportes de ventas e inventario. Los agregados
// se cachean con TTL corto: la UI refresca seguido y las consultas de
// agregación son las más caras de la aplicación.
type ReportsUseCase struct {
	analyticsRepo     repository.AnalyticsRepository
	productRepo       repository.ProductRepository
	reportCache       cache.ReportCache
	targets           Targets
	lowStockThreshold int
}

// NewReportsUseCase construye el caso de uso de reportes.
func NewReportsUseCase(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
	reportCache cache.ReportCache,
	targets Targets,
	lowStockThreshold int,
) *ReportsUseCase {
	return &ReportsUseCase{
		analyticsRepo:     analyticsRepo,
		productRepo:       productRepo,
		reportCache:       reportCache,
		targets:           targets,
		lowStockThreshold: lowStockThreshold,
	}
}

// GetSalesReport devuelve las series de ventas: por día (últimos 30),
// por mes (últimos 12), por categoría, por marca y top de productos.
func (uc *ReportsUseCase) GetSalesReport(ctx context.Context) (*dto.SalesReportResponse, error) {
	if payload, hit, _ := uc.reportCache.Get(ctx, salesReportKey); hit {
		var cached dto.SalesReportResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := todayStart.Add(24 * time.Hour)
	dailyStart := todayStart.AddDate(0, 0, -(reportDailyDays - 1))
	monthlyStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(reportMonthlyCount - 1), 0)

	daily, err := uc.analyticsRepo.GetDailySales(ctx, dailyStart, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: serie diaria: %w", err)
	}
	monthly, err := uc.analyticsRepo.GetMonthlySales(ctx, monthlyStart, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: serie mensual: %w", err)
	}
	byCategory, err := uc.analyticsRepo.GetCategorySales(ctx, monthlyStart, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: por categoría: %w", err)
	}
	byBrand, err := uc.analyticsRepo.GetBrandSales(ctx, monthlyStart, tomorrow, reportTopLimit)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: por marca: %w", err)
	}
	topProducts, err := uc.analyticsRepo.GetTopProducts(ctx, monthlyStart, tomorrow, reportTopLimit)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: top productos: %w", err)
	}

	report := &dto.SalesReportResponse{
		Daily:       make([]dto.DailySalesPoint, 0, len(daily)),
		Monthly:     make([]dto.MonthlySalesPoint, 0, len(monthly)),
		ByCategory:  make([]dto.CategorySalesPoint, 0, len(byCategory)),
		ByBrand:     make([]dto.BrandSalesPoint, 0, len(byBrand)),
		TopProducts: make([]dto.TopProductPoint, 0, len(topProducts)),
	}
	for _, d := range daily {
		report.Daily = append(report.Daily, dto.DailySalesPoint{
			Date:   d.Day.Format("2006-01-02"),
			Total:  d.Total.Round(2),
			Count:  d.Count,
			Target: uc.targets.Daily,
		})
	}
	for _, m := range monthly {
		report.Monthly = append(report.Monthly, dto.MonthlySalesPoint{
			Month:  m.Month.Format("2006-01"),
			Total:  m.Total.Round(2),
			Count:  m.Count,
			Target: uc.targets.Monthly,
		})
	}
	for _, c := range byCategory {
		report.ByCategory = append(report.ByCategory, dto.CategorySalesPoint{
			Category: c.Category,
			Total:    c.Revenue.Round(2),
		})
	}
	for _, b := range byBrand {
		report.ByBrand = append(report.ByBrand, dto.BrandSalesPoint{
			Brand: b.Brand,
			Total: b.Revenue.Round(2),
			Units: b.Units,
		})
	}
	for _, t := range topProducts {
		report.TopProducts = append(report.TopProducts, dto.TopProductPoint{
			ProductID: t.ProductID,
			Name:      t.Name,
			Brand:     t.Brand,
			Units:     t.Units,
			Revenue:   t.Revenue.Round(2),
			Stock:     t.Stock,
		})
	}

	uc.cachePut(ctx, salesReportKey, report)
	return report, nil
}

// GetOverview devuelve los totales históricos y del mes en curso junto con
// las metas configuradas.
func (uc *ReportsUseCase) GetOverview(ctx context.Context) (*dto.SalesOverviewResponse, error) {
	allTime, err := uc.analyticsRepo.GetSalesTotals(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: totales históricos: %w", err)
	}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	month, err := uc.analyticsRepo.GetSalesTotals(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: totales del mes: %w", err)
	}
	return &dto.SalesOverviewResponse{
		TotalSales:        allTime.TotalAmount.Round(2),
		TotalTransactions: allTime.Transactions,
		MonthSales:        month.TotalAmount.Round(2),
		MonthTransactions: month.Transactions,
		MonthlyTarget:     uc.targets.Monthly,
		DailyTarget:       uc.targets.Daily,
	}, nil
}

// GetSalesTrend devuelve solo las series del reporte de ventas.
func (uc *ReportsUseCase) GetSalesTrend(ctx context.Context) (*dto.SalesTrendResponse, error) {
	report, err := uc.GetSalesReport(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SalesTrendResponse{Daily: report.Daily, Monthly: report.Monthly}, nil
}

// GetInventoryReport devuelve el inventario valorizado con los productos
// bajo el umbral y los agotados.
func (uc *ReportsUseCase) GetInventoryReport(ctx context.Context) (*dto.InventoryReportResponse, error) {
	if payload, hit, _ := uc.reportCache.Get(ctx, inventoryReportKey); hit {
		var cached dto.InventoryReportResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario: productos: %w", err)
	}

	totalStock := 0
	purchaseValue := decimal.Zero
	retailValue := decimal.Zero
	lowStock := []dto.LowStockItem{}
	outOfStock := []dto.LowStockItem{}
	for _, p := range products {
		totalStock += p.CurrentStock
		qty := decimal.NewFromInt(int64(p.CurrentStock))
		purchaseValue = purchaseValue.Add(p.PurchasePrice.Mul(qty))
		retailValue = retailValue.Add(p.RetailPrice.Mul(qty))
		item := dto.LowStockItem{
			ID:           p.ID,
			SKU:          p.SKU,
			Name:         p.Name,
			Brand:        p.Brand,
			Size:         p.Size,
			CurrentStock: p.CurrentStock,
		}
		switch {
		case p.CurrentStock <= 0:
			outOfStock = append(outOfStock, item)
		case p.CurrentStock < uc.lowStockThreshold:
			lowStock = append(lowStock, item)
		}
	}

	report := &dto.InventoryReportResponse{
		TotalProducts: len(products),
		TotalStock:    totalStock,
		PurchaseValue: purchaseValue.Round(2),
		RetailValue:   retailValue.Round(2),
		PotentialGain: retailValue.Sub(purchaseValue).Round(2),
		LowStockItems: lowStock,
		OutOfStock:    outOfStock,
	}

	uc.cachePut(ctx, inventoryReportKey, report)
	return report, nil
}

// cachePut guarda el reporte serializado. Un fallo de cache no es fatal:
// el reporte ya está calculado.
func (uc *ReportsUseCase) cachePut(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = uc.reportCache.Set(ctx, key, payload, reportCacheTTL)
}
