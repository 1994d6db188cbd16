package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smartshoe/pos-api/internal/domain"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Las ventas son inmutables una vez confirmadas.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, invoice_number, sale_type, total_amount, payment_method, customer_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.InvoiceNumber, sale.SaleType, sale.TotalAmount,
		sale.PaymentMethod, sale.CustomerName, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta con el snapshot del producto.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, position, product_id, product_name, brand, size, color, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.Position, item.ProductID, item.ProductName, item.Brand,
		item.Size, item.Color, item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID con el conteo de sus líneas.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT s.id, s.invoice_number, s.sale_type, s.total_amount, s.payment_method, s.customer_name, s.created_at,
		       (SELECT COUNT(*) FROM sale_items i WHERE i.sale_id = s.id)::INT AS items_count
		FROM sales s WHERE s.id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.InvoiceNumber, &s.SaleType, &s.TotalAmount,
		&s.PaymentMethod, &s.CustomerName, &s.CreatedAt, &s.ItemsCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItemsBySaleID obtiene las líneas de una venta en el orden en que se
// vendieron (columna position, desde 1).
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, position, product_id, product_name, brand, size, color, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.Position, &it.ProductID, &it.ProductName, &it.Brand,
			&it.Size, &it.Color, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListRecent lista las últimas ventas, las más recientes primero.
func (r *SaleRepo) ListRecent(limit int) ([]*entity.Sale, error) {
	query := `
		SELECT s.id, s.invoice_number, s.sale_type, s.total_amount, s.payment_method, s.customer_name, s.created_at,
		       (SELECT COUNT(*) FROM sale_items i WHERE i.sale_id = s.id)::INT AS items_count
		FROM sales s ORDER BY s.created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.InvoiceNumber, &s.SaleType, &s.TotalAmount,
			&s.PaymentMethod, &s.CustomerName, &s.CreatedAt, &s.ItemsCount); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
