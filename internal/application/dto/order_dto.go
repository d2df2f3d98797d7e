package dto

import "github.com/shopspring/decimal"

// OrderItemRequest línea de pedido: id del producto y cantidad.
type OrderItemRequest struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"cantidad"`
}

// CreateOrderRequest entrada para nuevoPedido.
type CreateOrderRequest struct {
	Items    []OrderItemRequest `json:"pedido"`
	Total    decimal.Decimal    `json:"total"`
	ClientID string             `json:"cliente"`
	Status   string             `json:"estado"`
}

// UpdateOrderRequest entrada parcial para actualizarPedido. Items nil = no se revalida stock.
type UpdateOrderRequest struct {
	Items    []OrderItemRequest `json:"pedido"`
	Total    *decimal.Decimal   `json:"total"`
	ClientID *string            `json:"cliente"`
	Status   *string            `json:"estado"`
}

// OrderItemResponse línea de pedido en la salida.
type OrderItemResponse struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"cantidad"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string              `json:"id"`
	Items         []OrderItemResponse `json:"pedido"`
	Total         float64             `json:"total"`
	ClientID      string              `json:"cliente"`
	SalespersonID string              `json:"vendedor"`
	Status        string              `json:"estado"`
	CreatedAt     string              `json:"creado"`
}
