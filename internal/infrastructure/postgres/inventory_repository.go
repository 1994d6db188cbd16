package postgres

import (
	"context"
	"fmt"

	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del libro de inventario sobre PostgreSQL.
// Las filas son inmutables: solo INSERT y lecturas.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta una fila del libro (entrada o salida, cantidad siempre positiva).
func (r *InventoryRepo) Create(tx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, product_id, transaction_type, quantity, batch_number, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.Type, tx.Quantity, tx.BatchNumber, tx.Notes, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// ListRecent lista los últimos movimientos con el nombre del producto resuelto.
func (r *InventoryRepo) ListRecent(limit int) ([]*repository.InventoryTransactionWithProduct, error) {
	query := `
		SELECT t.id, t.product_id, t.transaction_type, t.quantity, t.batch_number, t.notes, t.created_at,
		       COALESCE(p.name, '')
		FROM inventory_transactions t
		LEFT JOIN products p ON p.id = t.product_id
		ORDER BY t.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	var list []*repository.InventoryTransactionWithProduct
	for rows.Next() {
		var t repository.InventoryTransactionWithProduct
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Type, &t.Quantity,
			&t.BatchNumber, &t.Notes, &t.CreatedAt, &t.ProductName); err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CurrentStock devuelve sum(in) - sum(out) para el producto.
func (r *InventoryRepo) CurrentStock(productID string) (int, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN transaction_type = 'in' THEN quantity ELSE -quantity END), 0)::INT
		FROM inventory_transactions WHERE product_id = $1`
	var stock int
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&stock); err != nil {
		return 0, fmt.Errorf("current stock: %w", err)
	}
	return stock, nil
}
