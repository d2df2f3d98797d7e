package repository

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Update persiste nombre, existencia y precio e incrementa Version.
	Update(ctx context.Context, product *entity.Product) error
	// Delete devuelve domain.ErrNotFound si no había fila.
	Delete(ctx context.Context, id string) error
	// Search busca por texto completo sobre el nombre, sin umbral de relevancia.
	Search(ctx context.Context, text string, limit int) ([]*entity.Product, error)
	// DecrementStock resta quantity solo si la versión leída sigue vigente y hay existencia;
	// en otro caso devuelve domain.ErrConflict.
	DecrementStock(ctx context.Context, id string, quantity, expectedVersion int) error
}
