package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario.
// Stock solo lo modifica el flujo de pedidos; Version se incrementa en cada escritura
// y habilita el descuento condicional (bloqueo optimista).
type Product struct {
	ID        string
	Name      string
	Stock     int
	Price     decimal.Decimal // precio unitario
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasStock indica si hay existencia suficiente para la cantidad pedida.
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.Stock
}
