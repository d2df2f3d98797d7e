package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa GraphQL los traduce a un código estable con errors.Is.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrForbidden          = errors.New("no tienes autorización para esta acción")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrUnauthenticated    = errors.New("autenticación requerida")
	ErrInvalidInput       = errors.New("entrada inválida")
)
