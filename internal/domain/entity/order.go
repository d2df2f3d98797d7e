package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un pedido.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// ValidOrderStatus indica si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem línea de pedido embebida. ProductID no tiene integridad referencial en BD;
// se valida solo al crear o actualizar el pedido.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Order pedido de un cliente, propiedad del vendedor que lo creó.
type Order struct {
	ID            string
	Items         []OrderItem
	Total         decimal.Decimal
	ClientID      string
	SalespersonID string
	Status        string // PENDING, COMPLETED, CANCELLED
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
