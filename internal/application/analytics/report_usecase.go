// Package analytics contiene los reportes de negocio sobre pedidos completados.
package analytics

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/domain/reporting"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

const (
	topClientsLimit = 10 // mejoresClientes
	topVendorsLimit = 3  // mejoresVendedores
)

// ReportUseCase genera mejoresClientes y mejoresVendedores.
//
// Fuente de datos: ReportRepository (agregados read-only). Sin caché: cada llamada
// refleja el estado actual de los pedidos.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, clientRepo: clientRepo, userRepo: userRepo}
}

// TopClients agrupa pedidos COMPLETED por cliente, ordena por total desc y toma los 10 primeros.
// Un cliente eliminado aparece con la lista de cliente vacía.
func (uc *ReportUseCase) TopClients(ctx context.Context) ([]dto.TopClientResponse, error) {
	totals, err := uc.reportRepo.CompletedTotalsByClient(ctx)
	if err != nil {
		return nil, err
	}
	ranked := reporting.TopN(totals, topClientsLimit)

	clients, err := uc.clientRepo.ListByIDs(ctx, keys(ranked))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]dto.ClientResponse, len(clients))
	for _, c := range clients {
		byID[c.ID] = dto.FromClient(c)
	}

	out := make([]dto.TopClientResponse, 0, len(ranked))
	for _, t := range ranked {
		row := dto.TopClientResponse{Total: t.Total.InexactFloat64(), Client: []dto.ClientResponse{}}
		if c, ok := byID[t.Key]; ok {
			row.Client = append(row.Client, c)
		}
		out = append(out, row)
	}
	return out, nil
}

// TopVendors agrupa pedidos COMPLETED por vendedor, ordena por total desc y toma los 3 primeros.
func (uc *ReportUseCase) TopVendors(ctx context.Context) ([]dto.TopVendorResponse, error) {
	totals, err := uc.reportRepo.CompletedTotalsBySalesperson(ctx)
	if err != nil {
		return nil, err
	}
	ranked := reporting.TopN(totals, topVendorsLimit)

	users, err := uc.userRepo.ListByIDs(ctx, keys(ranked))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]dto.UserResponse, len(users))
	for _, u := range users {
		byID[u.ID] = dto.FromUser(u)
	}

	out := make([]dto.TopVendorResponse, 0, len(ranked))
	for _, t := range ranked {
		row := dto.TopVendorResponse{Total: t.Total.InexactFloat64(), Vendor: []dto.UserResponse{}}
		if u, ok := byID[t.Key]; ok {
			row.Vendor = append(row.Vendor, u)
		}
		out = append(out, row)
	}
	return out, nil
}

func keys(totals []reporting.Total) []string {
	out := make([]string, 0, len(totals))
	for _, t := range totals {
		out = append(out, t.Key)
	}
	return out
}
