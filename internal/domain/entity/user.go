package entity

import "time"

// User representa un vendedor registrado. No se modifica después del registro.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
