package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, items, total, client_id, salesperson_id, status, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas del pedido se guardan como JSONB.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		o.ID, items, o.Total, o.ClientID, o.SalespersonID, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if !validID(id) {
		return nil, nil
	}
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List lista todos los pedidos.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return r.query(ctx, "list orders", `SELECT `+orderColumns+` FROM orders ORDER BY created_at`)
}

// ListBySalesperson lista los pedidos de un vendedor.
func (r *OrderRepo) ListBySalesperson(ctx context.Context, salespersonID string) ([]*entity.Order, error) {
	if !validID(salespersonID) {
		return nil, nil
	}
	return r.query(ctx, "list orders by salesperson",
		`SELECT `+orderColumns+` FROM orders WHERE salesperson_id = $1 ORDER BY created_at`, salespersonID)
}

// ListBySalespersonAndStatus lista los pedidos de un vendedor en un estado.
func (r *OrderRepo) ListBySalespersonAndStatus(ctx context.Context, salespersonID, status string) ([]*entity.Order, error) {
	if !validID(salespersonID) {
		return nil, nil
	}
	return r.query(ctx, "list orders by status",
		`SELECT `+orderColumns+` FROM orders WHERE salesperson_id = $1 AND status = $2 ORDER BY created_at`,
		salespersonID, status)
}

// Update reemplaza líneas, total, cliente y estado.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	query := `
		UPDATE orders SET items = $2, total = $3, client_id = $4, status = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, o.ID, items, o.Total, o.ClientID, o.Status, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido. No devuelve la existencia reservada.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o     entity.Order
		items []byte
	)
	if err := row.Scan(&o.ID, &items, &o.Total, &o.ClientID, &o.SalespersonID, &o.Status,
		&o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &o, nil
}
