// Package orders implementa el flujo de pedidos: validación del cliente, apartado de
// stock por línea y persistencia del pedido, todo en una transacción.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/access"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/inventory"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos (nuevoPedido, actualizarPedido, eliminarPedido y lecturas).
type OrderUseCase struct {
	txRunner   TxRunner
	clientRepo repository.ClientRepository
	orderRepo  repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, clientRepo repository.ClientRepository, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, clientRepo: clientRepo, orderRepo: orderRepo}
}

// Create valida que el cliente sea del vendedor, aparta el stock de cada línea en el
// orden recibido y guarda el pedido en estado PENDING. Todo o nada.
func (uc *OrderUseCase) Create(ctx context.Context, callerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := access.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	if in.Total.IsNegative() {
		return nil, fmt.Errorf("%w: total no puede ser negativo", domain.ErrInvalidInput)
	}
	status := entity.OrderStatusPending
	if in.Status != "" {
		if !entity.ValidOrderStatus(in.Status) {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, in.Status)
		}
		status = in.Status
	}
	if _, err := uc.ownedClient(ctx, callerID, in.ClientID); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		Items:         dto.ToOrderItems(in.Items),
		Total:         in.Total,
		ClientID:      in.ClientID,
		SalespersonID: callerID,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := uc.txRunner.RunOrder(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		if err := reserveStock(ctx, productRepo, order.Items); err != nil {
			return err
		}
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromOrder(order)
	return &out, nil
}

// Update aplica cambios parciales. Si trae líneas nuevas vuelve a apartar stock por ellas;
// el stock apartado por las líneas anteriores no se devuelve.
func (uc *OrderUseCase) Update(ctx context.Context, callerID, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if err := access.RequireCaller(callerID); err != nil {
		return nil, err
	}
	order, err := uc.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	clientID := order.ClientID
	if in.ClientID != nil {
		clientID = *in.ClientID
	}
	if _, err := uc.ownedClient(ctx, callerID, clientID); err != nil {
		return nil, err
	}
	if err := access.EnsureOwner(order.SalespersonID, callerID); err != nil {
		return nil, err
	}
	if in.Items != nil {
		if err := validateItems(in.Items); err != nil {
			return nil, err
		}
	}
	if in.Total != nil && in.Total.IsNegative() {
		return nil, fmt.Errorf("%w: total no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Status != nil && !entity.ValidOrderStatus(*in.Status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *in.Status)
	}

	order.ClientID = clientID
	if in.Items != nil {
		order.Items = dto.ToOrderItems(in.Items)
	}
	if in.Total != nil {
		order.Total = *in.Total
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
	order.UpdatedAt = time.Now()

	err = uc.txRunner.RunOrder(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		if in.Items != nil {
			if err := reserveStock(ctx, productRepo, order.Items); err != nil {
				return err
			}
		}
		return orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromOrder(order)
	return &out, nil
}

// Delete elimina un pedido propio. El stock apartado no se restituye.
func (uc *OrderUseCase) Delete(ctx context.Context, callerID, id string) error {
	if _, err := uc.ownedOrder(ctx, callerID, id); err != nil {
		return err
	}
	return uc.orderRepo.Delete(ctx, id)
}

// GetByID obtiene un pedido propio (obtenerPedido).
func (uc *OrderUseCase) GetByID(ctx context.Context, callerID, id string) (*dto.OrderResponse, error) {
	order, err := uc.ownedOrder(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromOrder(order)
	return &out, nil
}

// ListAll lista todos los pedidos (obtenerPedidos).
func (uc *OrderUseCase) ListAll(ctx context.Context, callerID string) ([]dto.OrderResponse, error) {
	if err := access.RequireCaller(callerID); err != nil {
		return nil, err
	}
	list, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListMine lista los pedidos del vendedor (obtenerPedidosVendedor).
func (uc *OrderUseCase) ListMine(ctx context.Context, callerID string) ([]dto.OrderResponse, error) {
	if err := access.RequireCaller(callerID); err != nil {
		return nil, err
	}
	list, err := uc.orderRepo.ListBySalesperson(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListMineByStatus lista los pedidos del vendedor en un estado (obtenerPedidosEstado).
func (uc *OrderUseCase) ListMineByStatus(ctx context.Context, callerID, status string) ([]dto.OrderResponse, error) {
	if err := access.RequireCaller(callerID); err != nil {
		return nil, err
	}
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}
	list, err := uc.orderRepo.ListBySalespersonAndStatus(ctx, callerID, status)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// reserveStock recorre las líneas en orden; la primera sin existencia suficiente aborta
// la transacción completa con el nombre del producto en el mensaje.
func reserveStock(ctx context.Context, productRepo repository.ProductRepository, items []entity.OrderItem) error {
	for _, item := range items {
		product, err := productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %s no encontrado", domain.ErrNotFound, item.ProductID)
		}
		if _, ok := inventory.Reserve(product, item.Quantity); !ok {
			return fmt.Errorf("%w: el artículo %s excede la cantidad disponible", domain.ErrInsufficientStock, product.Name)
		}
		if err := productRepo.DecrementStock(ctx, product.ID, item.Quantity, product.Version); err != nil {
			return err
		}
	}
	return nil
}

func (uc *OrderUseCase) ownedClient(ctx context.Context, callerID, clientID string) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: el cliente no existe", domain.ErrNotFound)
	}
	if err := access.EnsureOwner(client.SalespersonID, callerID); err != nil {
		return nil, err
	}
	return client, nil
}

func (uc *OrderUseCase) findOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: el pedido no existe", domain.ErrNotFound)
	}
	return order, nil
}

func (uc *OrderUseCase) ownedOrder(ctx context.Context, callerID, id string) (*entity.Order, error) {
	if err := access.RequireCaller(callerID); err != nil {
		return nil, err
	}
	order, err := uc.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.EnsureOwner(order.SalespersonID, callerID); err != nil {
		return nil, err
	}
	return order, nil
}

func validateItems(items []dto.OrderItemRequest) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: el pedido debe tener al menos un artículo", domain.ErrInvalidInput)
	}
	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return fmt.Errorf("%w: cada artículo necesita id y cantidad positiva", domain.ErrInvalidInput)
		}
	}
	return nil
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.FromOrder(o))
	}
	return out
}
