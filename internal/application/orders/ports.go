package orders

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a ella.
// Si fn devuelve error no queda ningún descuento de stock ni pedido persistido.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
