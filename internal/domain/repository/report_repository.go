package repository

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/internal/domain/reporting"
)

// ReportRepository consultas de solo lectura sobre pedidos COMPLETED.
// Devuelve todos los grupos sin ordenar; el ranking lo hace reporting.TopN.
type ReportRepository interface {
	CompletedTotalsByClient(ctx context.Context) ([]reporting.Total, error)
	CompletedTotalsBySalesperson(ctx context.Context) ([]reporting.Total, error)
}
