package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, stock, price, version, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Stock, p.Price, p.Version, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	var p entity.Product
	err := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Stock, &p.Price, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista todos los productos (sin paginación).
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.query(ctx, "list products", `SELECT `+productColumns+` FROM products ORDER BY created_at`)
}

// Search búsqueda de texto completo en el nombre. Basta con que coincida una palabra
// (términos unidos con OR); se ordena por relevancia sin umbral mínimo.
func (r *ProductRepo) Search(ctx context.Context, text string, limit int) ([]*entity.Product, error) {
	query := `
		WITH q AS (
			SELECT NULLIF(replace(plainto_tsquery('spanish', $1)::text, '&', '|'), '')::tsquery AS tsq
		)
		SELECT ` + productColumns + `
		FROM products, q
		WHERE to_tsvector('spanish', name) @@ q.tsq
		ORDER BY ts_rank(to_tsvector('spanish', name), q.tsq) DESC, created_at
		LIMIT $2`
	return r.query(ctx, "search products", query, text, limit)
}

// Update actualiza nombre, existencia y precio e incrementa la versión.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, stock = $3, price = $4, version = version + 1, updated_at = $5
		WHERE id = $1
		RETURNING version`
	err := r.q.QueryRow(ctx, query, p.ID, p.Name, p.Stock, p.Price, p.UpdatedAt).Scan(&p.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DecrementStock escritura condicional: solo descuenta si la versión leída sigue vigente
// y hay existencia suficiente. Si otra transacción ganó la carrera devuelve ErrConflict.
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, quantity, expectedVersion int) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET stock = stock - $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $3 AND stock >= $2`,
		id, quantity, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: el producto cambió durante el pedido, reintente", domain.ErrConflict)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.Price, &p.Version, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
