package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name  string          `json:"nombre"`
	Stock int             `json:"existencia"`
	Price decimal.Decimal `json:"precio"`
}

// UpdateProductRequest entrada parcial: solo se modifican los campos presentes.
type UpdateProductRequest struct {
	Name  *string          `json:"nombre"`
	Stock *int             `json:"existencia"`
	Price *decimal.Decimal `json:"precio"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"nombre"`
	Stock     int     `json:"existencia"`
	Price     float64 `json:"precio"`
	CreatedAt string  `json:"creado"`
}
