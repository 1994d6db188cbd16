package entity

import "time"

// Category agrupa productos por tipo de calzado (Sneakers, Running, Formal...).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// Brand marca del fabricante con su país de origen.
type Brand struct {
	ID        string
	Name      string
	Country   string
	CreatedAt time.Time
}
