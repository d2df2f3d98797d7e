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

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, first_name, last_name, company, email, phone, salesperson_id, created_at, updated_at`

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un cliente. Email duplicado → domain.ErrConflict.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Company, c.Email, c.Phone, c.SalespersonID,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	if !validID(id) {
		return nil, nil
	}
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// GetByEmail obtiene un cliente por email.
func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE email = $1`, email))
	if err != nil {
		return nil, fmt.Errorf("get client by email: %w", err)
	}
	return c, nil
}

// List lista todos los clientes.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	return r.query(ctx, "list clients", `SELECT `+clientColumns+` FROM clients ORDER BY created_at`)
}

// ListBySalesperson lista los clientes de un vendedor.
func (r *ClientRepo) ListBySalesperson(ctx context.Context, salespersonID string) ([]*entity.Client, error) {
	if !validID(salespersonID) {
		return nil, nil
	}
	return r.query(ctx, "list clients by salesperson",
		`SELECT `+clientColumns+` FROM clients WHERE salesperson_id = $1 ORDER BY created_at`, salespersonID)
}

// ListByIDs obtiene los clientes indicados (join de mejoresClientes).
func (r *ClientRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Client, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	return r.query(ctx, "list clients by ids",
		`SELECT `+clientColumns+` FROM clients WHERE id = ANY($1::uuid[])`, ids)
}

// Update actualiza los datos de contacto. El vendedor no se reasigna.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET first_name = $2, last_name = $3, company = $4, email = $5, phone = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.FirstName, c.LastName, c.Company, c.Email, c.Phone, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente. Sus pedidos se conservan.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Company, &c.Email, &c.Phone,
		&c.SalespersonID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
