package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen para la pantalla principal.
type DashboardResponse struct {
	TotalProducts  int             `json:"total_products"`
	TotalStock     int             `json:"total_stock"`
	LowStockCount  int             `json:"low_stock_count"`
	TodaySales     decimal.Decimal `json:"today_sales"`
	TodayCount     int             `json:"today_count"`
	MonthSales     decimal.Decimal `json:"month_sales"`
	MonthCount     int             `json:"month_count"`
	RecentSales    []SaleResponse  `json:"recent_sales"`
	LowStockItems  []LowStockItem  `json:"low_stock_items"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// LowStockItem producto bajo el umbral de stock mínimo.
type LowStockItem struct {
	ID           string `json:"id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Size         string `json:"size"`
	CurrentStock int    `json:"current_stock"`
}

// SalesOverviewResponse totales históricos y del mes con las metas.
type SalesOverviewResponse struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalTransactions int             `json:"total_transactions"`
	MonthSales        decimal.Decimal `json:"month_sales"`
	MonthTransactions int             `json:"month_transactions"`
	MonthlyTarget     decimal.Decimal `json:"monthly_target"`
	DailyTarget       decimal.Decimal `json:"daily_target"`
}

// SalesTrendResponse series diaria y mensual para las gráficas.
type SalesTrendResponse struct {
	Daily   []DailySalesPoint   `json:"daily"`
	Monthly []MonthlySalesPoint `json:"monthly"`
}

// LowStockResponse productos bajo el umbral, para el widget del dashboard.
type LowStockResponse struct {
	Items []LowStockItem `json:"items"`
	Count int            `json:"count"`
}

// DailySalesPoint ventas de un día para la serie del reporte.
type DailySalesPoint struct {
	Date   string          `json:"date"`
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
	Target decimal.Decimal `json:"target"`
}

// MonthlySalesPoint ventas de un mes para la serie del reporte.
type MonthlySalesPoint struct {
	Month  string          `json:"month"`
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
	Target decimal.Decimal `json:"target"`
}

// CategorySalesPoint ventas acumuladas por categoría.
type CategorySalesPoint struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Units    int             `json:"units"`
}

// BrandSalesPoint ventas acumuladas por marca.
type BrandSalesPoint struct {
	Brand string          `json:"brand"`
	Total decimal.Decimal `json:"total"`
	Units int             `json:"units"`
}

// TopProductPoint producto más vendido por ingreso, con su stock restante.
type TopProductPoint struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Units     int             `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
	Stock     int             `json:"stock"`
}

// SalesReportResponse reporte de ventas completo.
type SalesReportResponse struct {
	Daily       []DailySalesPoint    `json:"daily"`
	Monthly     []MonthlySalesPoint  `json:"monthly"`
	ByCategory  []CategorySalesPoint `json:"by_category"`
	ByBrand     []BrandSalesPoint    `json:"by_brand"`
	TopProducts []TopProductPoint    `json:"top_products"`
}

// InventoryReportResponse reporte de inventario valorizado.
type InventoryReportResponse struct {
	TotalProducts int             `json:"total_products"`
	TotalStock    int             `json:"total_stock"`
	PurchaseValue decimal.Decimal `json:"purchase_value"`
	RetailValue   decimal.Decimal `json:"retail_value"`
	PotentialGain decimal.Decimal `json:"potential_gain"`
	LowStockItems []LowStockItem  `json:"low_stock_items"`
	OutOfStock    []LowStockItem  `json:"out_of_stock"`
}
