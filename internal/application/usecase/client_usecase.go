package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/access"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

// ClientUseCase casos de uso del CRM. Cada cliente pertenece al vendedor que lo creó.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registra un cliente asignado al vendedor que llama.
func (uc *ClientUseCase) Create(ctx context.Context, callerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := access.RequireCaller(callerID); err != nil {
		return nil, err
	}
	client := &entity.Client{
		ID:            uuid.New().String(),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Company:       strings.TrimSpace(in.Company),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:         trimOptional(in.Phone),
		SalespersonID: callerID,
	}
	if err := validateClient(client); err != nil {
		return nil, err
	}
	if err := uc.ensureEmailFree(ctx, client.Email, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, wrapClientConflict(err)
	}
	out := dto.FromClient(client)
	return &out, nil
}

// GetByID obtiene un cliente: primero existencia (NotFound), luego propiedad (Forbidden).
func (uc *ClientUseCase) GetByID(ctx context.Context, callerID, id string) (*dto.ClientResponse, error) {
	client, err := uc.owned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromClient(client)
	return &out, nil
}

// ListAll lista todos los clientes (obtenerClientes). Requiere identidad, no filtra por dueño.
func (uc *ClientUseCase) ListAll(ctx context.Context, callerID string) ([]dto.ClientResponse, error) {
	if err := access.RequireCaller(callerID); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// ListMine lista los clientes del vendedor que llama (obtenerClientesVendedor).
func (uc *ClientUseCase) ListMine(ctx context.Context, callerID string) ([]dto.ClientResponse, error) {
	if err := access.RequireCaller(callerID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListBySalesperson(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// Update modifica los campos presentes. El vendedor asignado nunca cambia.
func (uc *ClientUseCase) Update(ctx context.Context, callerID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.owned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		client.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		client.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Company != nil {
		client.Company = strings.TrimSpace(*in.Company)
	}
	if in.Phone != nil {
		client.Phone = trimOptional(in.Phone)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != client.Email {
			if err := uc.ensureEmailFree(ctx, email, client.ID); err != nil {
				return nil, err
			}
		}
		client.Email = email
	}
	if err := validateClient(client); err != nil {
		return nil, err
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, wrapClientConflict(err)
	}
	out := dto.FromClient(client)
	return &out, nil
}

// Delete elimina un cliente propio. Sus pedidos no se eliminan.
func (uc *ClientUseCase) Delete(ctx context.Context, callerID, id string) error {
	if _, err := uc.owned(ctx, callerID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ClientUseCase) owned(ctx context.Context, callerID, id string) (*entity.Client, error) {
	if err := access.RequireCaller(callerID); err != nil {
		return nil, err
	}
	client, err := uc.repo.GetByID(ctx, id)
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

func (uc *ClientUseCase) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: este cliente ya existe", domain.ErrConflict)
	}
	return nil
}

func validateClient(c *entity.Client) error {
	if c.FirstName == "" || c.LastName == "" || c.Company == "" || c.Email == "" {
		return fmt.Errorf("%w: nombre, apellido, empresa y email son requeridos", domain.ErrInvalidInput)
	}
	return nil
}

func wrapClientConflict(err error) error {
	if errors.Is(err, domain.ErrConflict) {
		return fmt.Errorf("%w: este cliente ya existe", domain.ErrConflict)
	}
	return err
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func toClientResponses(list []*entity.Client) []dto.ClientResponse {
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.FromClient(c))
	}
	return out
}
