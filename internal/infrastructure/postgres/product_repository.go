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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// stockExpr calcula el stock actual del producto p: entradas menos salidas
// del libro de inventario. El stock nunca se guarda como columna.
const stockExpr = `COALESCE((
		SELECT SUM(CASE WHEN t.transaction_type = 'in' THEN t.quantity ELSE -t.quantity END)
		FROM inventory_transactions t WHERE t.product_id = p.id
	), 0)::INT`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El stock inicial siempre es 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, brand, category, size, color, purchase_price, retail_price, wholesale_price, supplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Brand, product.Category,
		product.Size, product.Color, product.PurchasePrice, product.RetailPrice,
		product.WholesalePrice, product.Supplier, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con su stock derivado.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.brand, p.category, p.size, p.color,
		       p.purchase_price, p.retail_price, p.wholesale_price, p.supplier,
		       ` + stockExpr + ` AS current_stock, p.created_at, p.updated_at
		FROM products p WHERE p.id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetBySKU obtiene un producto por SKU con su stock derivado.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.brand, p.category, p.size, p.color,
		       p.purchase_price, p.retail_price, p.wholesale_price, p.supplier,
		       ` + stockExpr + ` AS current_stock, p.created_at, p.updated_at
		FROM products p WHERE p.sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get product by sku")
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Brand, &p.Category, &p.Size, &p.Color,
		&p.PurchasePrice, &p.RetailPrice, &p.WholesalePrice, &p.Supplier,
		&p.CurrentStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// Update actualiza un producto existente. El stock no se modifica aquí:
// solo cambia con filas del libro de inventario.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, brand = $3, category = $4, size = $5, color = $6,
			purchase_price = $7, retail_price = $8, wholesale_price = $9, supplier = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Brand, product.Category, product.Size, product.Color,
		product.PurchasePrice, product.RetailPrice, product.WholesalePrice, product.Supplier, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista todos los productos, los más recientes primero, con stock derivado.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.brand, p.category, p.size, p.color,
		       p.purchase_price, p.retail_price, p.wholesale_price, p.supplier,
		       ` + stockExpr + ` AS current_stock, p.created_at, p.updated_at
		FROM products p ORDER BY p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Brand, &p.Category, &p.Size, &p.Color,
			&p.PurchasePrice, &p.RetailPrice, &p.WholesalePrice, &p.Supplier,
			&p.CurrentStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. El use case valida antes que el stock sea 0.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
