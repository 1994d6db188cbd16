package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartshoe/pos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// stockCTE stock derivado por producto, para las consultas de inventario.
const stockCTE = `
	WITH stock AS (
		SELECT p.id, p.name, p.purchase_price,
		       COALESCE((
		           SELECT SUM(CASE WHEN t.transaction_type = 'in' THEN t.quantity ELSE -t.quantity END)
		           FROM inventory_transactions t WHERE t.product_id = p.id
		       ), 0)::INT AS qty
		FROM products p
	)`

// AnalyticsRepo consultas de solo lectura para el dashboard y los reportes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesTotals suma y cuenta las ventas en [start, end). Con rango cero
// devuelve los totales históricos.
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context, start, end time.Time) (repository.SalesTotals, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0) AS total, COUNT(*)::INT AS transactions
		FROM sales WHERE created_at >= $1 AND created_at < $2`
	args := []any{start, end}
	if start.IsZero() && end.IsZero() {
		query = `SELECT COALESCE(SUM(total_amount), 0) AS total, COUNT(*)::INT AS transactions FROM sales`
		args = nil
	}

	var totals repository.SalesTotals
	err := r.pool.QueryRow(ctx, query, args...).Scan(&totals.TotalAmount, &totals.Transactions)
	if err != nil {
		return repository.SalesTotals{}, fmt.Errorf("analytics.GetSalesTotals: %w", err)
	}
	return totals, nil
}

// GetDailySales devuelve un total por día en [start, end), incluyendo días
// sin ventas con total cero (generate_series).
func (r *AnalyticsRepo) GetDailySales(ctx context.Context, start, end time.Time) ([]repository.DailySalesResult, error) {
	const query = `
		SELECT d.day::DATE, COALESCE(SUM(s.total_amount), 0) AS total, COUNT(s.id)::INT AS sales_count
		FROM generate_series($1::DATE, $2::DATE - INTERVAL '1 day', INTERVAL '1 day') AS d(day)
		LEFT JOIN sales s ON s.created_at >= d.day AND s.created_at < d.day + INTERVAL '1 day'
		GROUP BY d.day
		ORDER BY d.day`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDailySales: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySalesResult
	for rows.Next() {
		var row repository.DailySalesResult
		if err := rows.Scan(&row.Day, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetDailySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetMonthlySales devuelve un total por mes calendario en [start, end),
// incluyendo meses sin ventas con total cero.
func (r *AnalyticsRepo) GetMonthlySales(ctx context.Context, start, end time.Time) ([]repository.MonthlySalesResult, error) {
	const query = `
		SELECT m.month::DATE, COALESCE(SUM(s.total_amount), 0) AS total, COUNT(s.id)::INT AS sales_count
		FROM generate_series(date_trunc('month', $1::DATE), date_trunc('month', $2::DATE - INTERVAL '1 day'), INTERVAL '1 month') AS m(month)
		LEFT JOIN sales s ON date_trunc('month', s.created_at) = m.month
		GROUP BY m.month
		ORDER BY m.month`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMonthlySales: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlySalesResult
	for rows.Next() {
		var row repository.MonthlySalesResult
		if err := rows.Scan(&row.Month, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetMonthlySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetCategorySales agrupa el ingreso real de sale_items por categoría del
// producto. Líneas de productos ya eliminados se agrupan en 'Otros'.
func (r *AnalyticsRepo) GetCategorySales(ctx context.Context, start, end time.Time) ([]repository.CategorySalesResult, error) {
	const query = `
		SELECT COALESCE(p.category, 'Otros') AS category, SUM(i.subtotal) AS revenue
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		LEFT JOIN products p ON p.id = i.product_id
		WHERE s.created_at >= $1 AND s.created_at < $2
		GROUP BY COALESCE(p.category, 'Otros')
		ORDER BY revenue DESC`
	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetCategorySales: %w", err)
	}
	defer rows.Close()

	var results []repository.CategorySalesResult
	for rows.Next() {
		var row repository.CategorySalesResult
		if err := rows.Scan(&row.Category, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetCategorySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetBrandSales agrupa ingreso y unidades por marca (snapshot de la línea),
// ordenado por ingreso descendente.
func (r *AnalyticsRepo) GetBrandSales(ctx context.Context, start, end time.Time, limit int) ([]repository.BrandSalesResult, error) {
	const query = `
		SELECT i.brand, SUM(i.subtotal) AS revenue, SUM(i.quantity)::INT AS units
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.created_at >= $1 AND s.created_at < $2
		GROUP BY i.brand
		ORDER BY revenue DESC
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetBrandSales: %w", err)
	}
	defer rows.Close()

	var results []repository.BrandSalesResult
	for rows.Next() {
		var row repository.BrandSalesResult
		if err := rows.Scan(&row.Brand, &row.Revenue, &row.Units); err != nil {
			return nil, fmt.Errorf("analytics.GetBrandSales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts devuelve los limit productos con mayor ingreso en el período,
// con su stock actual derivado.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
		SELECT i.product_id, i.product_name, i.brand,
		       SUM(i.quantity)::INT AS units, SUM(i.subtotal) AS revenue,
		       COALESCE((
		           SELECT SUM(CASE WHEN t.transaction_type = 'in' THEN t.quantity ELSE -t.quantity END)
		           FROM inventory_transactions t WHERE t.product_id = i.product_id
		       ), 0)::INT AS stock
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.created_at >= $1 AND s.created_at < $2
		GROUP BY i.product_id, i.product_name, i.brand
		ORDER BY revenue DESC
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Brand, &row.Units, &row.Revenue, &row.Stock); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetInventorySummary valoriza el inventario a precio de compra y cuenta
// productos bajo el umbral o agotados.
func (r *AnalyticsRepo) GetInventorySummary(ctx context.Context, lowStockThreshold int) (repository.InventorySummary, error) {
	query := stockCTE + `
		SELECT COUNT(*)::INT AS total_items,
		       COUNT(*) FILTER (WHERE qty > 0 AND qty < $1)::INT AS low_stock,
		       COUNT(*) FILTER (WHERE qty <= 0)::INT AS out_of_stock,
		       COALESCE(SUM(qty * purchase_price), 0) AS total_value
		FROM stock`
	var summary repository.InventorySummary
	err := r.pool.QueryRow(ctx, query, lowStockThreshold).Scan(
		&summary.TotalItems, &summary.LowStockItems, &summary.OutOfStockItems, &summary.TotalValue,
	)
	if err != nil {
		return repository.InventorySummary{}, fmt.Errorf("analytics.GetInventorySummary: %w", err)
	}
	return summary, nil
}
