package repository

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	ListBySalesperson(ctx context.Context, salespersonID string) ([]*entity.Order, error)
	ListBySalespersonAndStatus(ctx context.Context, salespersonID, status string) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
}
