package repository

import "github.com/smartshoe/pos-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Delete(id string) error
}

// BrandRepository define el puerto de persistencia para Brand.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByName(name string) (*entity.Brand, error)
	List() ([]*entity.Brand, error)
	Delete(id string) error
}
