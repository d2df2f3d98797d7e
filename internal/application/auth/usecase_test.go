package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/application/auth"
	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/infrastructure/memory"
	"github.com/jhoicas/crm-ventas-api/pkg/jwt"
)

const testSecret = "test-secret"

func newAuth() (*auth.AuthUseCase, *memory.Store) {
	store := memory.NewStore()
	return auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}), store
}

func register(t *testing.T, uc *auth.AuthUseCase) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Ana", LastName: "Pérez", Email: " Ana@Example.com ", Password: "secreto123",
	})
	require.NoError(t, err)
	return out
}

func TestRegister_HasheaYNormalizaEmail(t *testing.T) {
	uc, store := newAuth()
	out := register(t, uc)

	assert.Equal(t, "ana@example.com", out.Email)
	assert.NotEmpty(t, out.ID)

	stored, err := store.Users().GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.True(t, auth.CheckPassword("secreto123", stored.PasswordHash))
}

func TestRegister_Duplicado_Conflict(t *testing.T) {
	uc, _ := newAuth()
	register(t, uc)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		FirstName: "Otra", LastName: "Ana", Email: "ana@example.com", Password: "x",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegister_CamposRequeridos(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthenticate_TokenDecodificaAlUsuario(t *testing.T) {
	uc, _ := newAuth()
	user := register(t, uc)

	tok, err := uc.Authenticate(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	id, err := uc.VerifyToken(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id.ID)
	assert.Equal(t, "ana@example.com", id.Email)
	assert.Equal(t, "Ana", id.FirstName)
	assert.Equal(t, "Pérez", id.LastName)
}

func TestAuthenticate_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuth()
	register(t, uc)

	_, err := uc.Authenticate(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Authenticate(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyToken_Invalido(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.VerifyToken("basura")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	other, err := jwt.Generate("otro", jwt.Identity{ID: "u1"}, "test", 60)
	require.NoError(t, err)
	_, err = uc.VerifyToken(other)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestCurrentUser(t *testing.T) {
	uc, _ := newAuth()

	_, err := uc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	ctx := auth.WithIdentity(context.Background(), jwt.Identity{ID: "u1", Email: "a@b.com", FirstName: "Ana"})
	out, err := uc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", out.ID)
	assert.Equal(t, "a@b.com", out.Email)
	assert.Equal(t, "u1", auth.CallerID(ctx))
}
