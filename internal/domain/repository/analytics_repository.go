package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesTotals resultado crudo de agregación de ventas (suma y conteo).
type SalesTotals struct {
	TotalAmount  decimal.Decimal
	Transactions int
}

// DailySalesResult ventas agregadas de un día.
type DailySalesResult struct {
	Day   time.Time
	Total decimal.Decimal
	Count int
}

// MonthlySalesResult ventas agregadas de un mes calendario.
type MonthlySalesResult struct {
	Month time.Time // primer día del mes
	Total decimal.Decimal
	Count int
}

// CategorySalesResult ingresos por categoría (JOIN sale_items → products).
type CategorySalesResult struct {
	Category string
	Revenue  decimal.Decimal
}

// BrandSalesResult ingresos y unidades por marca.
type BrandSalesResult struct {
	Brand   string
	Revenue decimal.Decimal
	Units   int
}

// TopProductResult producto ordenado por ingreso descendente.
type TopProductResult struct {
	ProductID string
	Name      string
	Brand     string
	Units     int
	Revenue   decimal.Decimal
	Stock     int
}

// InventorySummary totales del inventario valorizado a precio de compra.
type InventorySummary struct {
	TotalItems      int
	LowStockItems   int // stock < umbral
	OutOfStockItems int // stock = 0
	TotalValue      decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard y
// los reportes. Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesTotals suma y cuenta las ventas en el rango [start, end).
	// Con rango cero devuelve los totales históricos.
	GetSalesTotals(ctx context.Context, start, end time.Time) (SalesTotals, error)

	// GetDailySales devuelve un total por día en el rango [start, end),
	// incluyendo días sin ventas con total cero.
	GetDailySales(ctx context.Context, start, end time.Time) ([]DailySalesResult, error)

	// GetMonthlySales devuelve un total por mes calendario en el rango.
	GetMonthlySales(ctx context.Context, start, end time.Time) ([]MonthlySalesResult, error)

	// GetCategorySales agrupa el ingreso real de sale_items por categoría.
	GetCategorySales(ctx context.Context, start, end time.Time) ([]CategorySalesResult, error)

	// GetBrandSales agrupa ingreso y unidades vendidas por marca, ordenado
	// por ingreso descendente, máximo limit marcas.
	GetBrandSales(ctx context.Context, start, end time.Time, limit int) ([]BrandSalesResult, error)

	// GetTopProducts devuelve los limit productos con mayor ingreso.
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)

	// GetInventorySummary valoriza el inventario y cuenta productos con
	// stock bajo (menor que lowStockThreshold) o agotados.
	GetInventorySummary(ctx context.Context, lowStockThreshold int) (InventorySummary, error)
}
