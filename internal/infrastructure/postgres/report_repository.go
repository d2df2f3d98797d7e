package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-ventas-api/internal/domain/reporting"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregaciones sobre pedidos COMPLETED.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// CompletedTotalsByClient suma el total de los pedidos COMPLETED por cliente.
func (r *ReportRepo) CompletedTotalsByClient(ctx context.Context) ([]reporting.Total, error) {
	return r.totals(ctx, "client_id")
}

// CompletedTotalsBySalesperson suma el total de los pedidos COMPLETED por vendedor.
func (r *ReportRepo) CompletedTotalsBySalesperson(ctx context.Context) ([]reporting.Total, error) {
	return r.totals(ctx, "salesperson_id")
}

// column es siempre una constante interna, nunca entrada del usuario.
func (r *ReportRepo) totals(ctx context.Context, column string) ([]reporting.Total, error) {
	query := `
		SELECT ` + column + `::text, SUM(total)
		FROM orders
		WHERE status = 'COMPLETED'
		GROUP BY ` + column
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("completed totals by %s: %w", column, err)
	}
	defer rows.Close()
	var out []reporting.Total
	for rows.Next() {
		var t reporting.Total
		if err := rows.Scan(&t.Key, &t.Total); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
