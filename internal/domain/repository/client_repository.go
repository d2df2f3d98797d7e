package repository

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByEmail(ctx context.Context, email string) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)
	ListBySalesperson(ctx context.Context, salespersonID string) ([]*entity.Client, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}
