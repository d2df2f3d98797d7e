package auth

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
	"github.com/jhoicas/crm-ventas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y validación de token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrConflict si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return nil, fmt.Errorf("%w: nombre, apellido, email y password son requeridos", domain.ErrInvalidInput)
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el usuario ya está registrado", domain.ErrConflict)
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// El índice único cubre la carrera entre la consulta previa y el insert.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: el usuario ya está registrado", domain.ErrConflict)
		}
		return nil, err
	}
	out := dto.FromUser(user)
	return &out, nil
}

// Authenticate verifica email/password y emite un token firmado.
// Email desconocido y password incorrecto producen el mismo error.
func (uc *AuthUseCase) Authenticate(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.TokenResponse{Token: token}, nil
}

// VerifyToken valida firma y expiración. Cualquier fallo es ErrInvalidToken.
func (uc *AuthUseCase) VerifyToken(token string) (jwt.Identity, error) {
	id, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return jwt.Identity{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	return id, nil
}

// CurrentUser devuelve la identidad del token (obtenerUsuario), sin consultar la DB.
func (uc *AuthUseCase) CurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	id, _ := IdentityFrom(ctx)
	if err := access.RequireCaller(id.ID); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        id.ID,
		FirstName: id.FirstName,
		LastName:  id.LastName,
		Email:     id.Email,
	}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
