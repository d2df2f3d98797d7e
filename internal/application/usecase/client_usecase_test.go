package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/infrastructure/memory"
)

const (
	ana  = "11111111-1111-1111-1111-111111111111"
	beto = "22222222-2222-2222-2222-222222222222"
)

func newClientInput(email string) dto.CreateClientRequest {
	phone := " 555-0101 "
	return dto.CreateClientRequest{FirstName: "Juan", LastName: "Gómez", Company: "ACME", Email: email, Phone: &phone}
}

func TestClient_CrearAsignaVendedor(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewStore().Clients())

	out, err := uc.Create(context.Background(), ana, newClientInput("Juan@ACME.com"))
	require.NoError(t, err)
	assert.Equal(t, ana, out.SalespersonID)
	assert.Equal(t, "juan@acme.com", out.Email)
	require.NotNil(t, out.Phone)
	assert.Equal(t, "555-0101", *out.Phone)

	_, err = uc.Create(context.Background(), beto, newClientInput("juan@acme.com"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Create(context.Background(), "", newClientInput("otro@acme.com"))
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = uc.Create(context.Background(), ana, dto.CreateClientRequest{Email: "x@acme.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClient_PropiedadEnLecturaYEscritura(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewStore().Clients())
	created, err := uc.Create(context.Background(), ana, newClientInput("juan@acme.com"))
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), beto, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Existencia antes que propiedad.
	_, err = uc.GetByID(context.Background(), beto, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	company := "Globex"
	_, err = uc.Update(context.Background(), beto, created.ID, dto.UpdateClientRequest{Company: &company})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, uc.Delete(context.Background(), beto, created.ID), domain.ErrForbidden)
}

func TestClient_ActualizarYLeer(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewStore().Clients())
	created, err := uc.Create(context.Background(), ana, newClientInput("juan@acme.com"))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), ana, newClientInput("maria@acme.com"))
	require.NoError(t, err)

	company := "Globex"
	out, err := uc.Update(context.Background(), ana, created.ID, dto.UpdateClientRequest{Company: &company})
	require.NoError(t, err)
	assert.Equal(t, "Globex", out.Company)
	assert.Equal(t, "Juan", out.FirstName)

	got, err := uc.GetByID(context.Background(), ana, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Globex", got.Company)
	assert.Equal(t, ana, got.SalespersonID)

	taken := "maria@acme.com"
	_, err = uc.Update(context.Background(), ana, created.ID, dto.UpdateClientRequest{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestClient_Listados(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewStore().Clients())
	_, err := uc.Create(context.Background(), ana, newClientInput("a1@acme.com"))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), ana, newClientInput("a2@acme.com"))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), beto, newClientInput("b1@acme.com"))
	require.NoError(t, err)

	mine, err := uc.ListMine(context.Background(), ana)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "a1@acme.com", mine[0].Email)

	all, err := uc.ListAll(context.Background(), beto)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = uc.ListMine(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestClient_Eliminar(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewStore().Clients())
	created, err := uc.Create(context.Background(), ana, newClientInput("juan@acme.com"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), ana, created.ID))
	_, err = uc.GetByID(context.Background(), ana, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
