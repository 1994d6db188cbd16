package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInvalidCredential = errors.New("credenciales inválidas")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStockNotEmpty     = errors.New("el producto aún tiene stock")
)
