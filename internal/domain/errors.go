package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidCredential = errors.New("credenciales inválidas")
	ErrUserInactive      = errors.New("usuario inactivo")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrNoSession         = errors.New("no hay sesión activa")
)
