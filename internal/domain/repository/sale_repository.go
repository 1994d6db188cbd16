package repository

import "github.com/smartshoe/pos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Una venta es inmutable: solo Create y lecturas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	ListRecent(limit int) ([]*entity.Sale, error)
}
