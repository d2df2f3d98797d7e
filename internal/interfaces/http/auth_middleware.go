package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/jhoicas/crm-ventas-api/internal/application/auth"
	"github.com/jhoicas/crm-ventas-api/internal/interfaces/gql"
	"github.com/jhoicas/crm-ventas-api/pkg/jwt"
)

// LocalUserID key en c.Locals con el id del vendedor autenticado.
const LocalUserID = "user_id"

// TokenVerifier valida un Bearer token (auth.AuthUseCase).
type TokenVerifier interface {
	VerifyToken(token string) (jwt.Identity, error)
}

// AuthMiddleware lee el Bearer token si viene. Sin header la petición sigue anónima y cada
// operación decide si exige identidad. Un token presente pero inválido corta con 401.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return invalidToken(c, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return invalidToken(c, "token vacío")
		}
		identity, err := verifier.VerifyToken(tokenString)
		if err != nil {
			return invalidToken(c, "token inválido o expirado")
		}
		c.Locals(LocalUserID, identity.ID)
		c.SetUserContext(auth.WithIdentity(c.UserContext(), identity))
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// invalidToken responde con el mismo formato de errores que GraphQL.
func invalidToken(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(&graphql.Result{
		Errors: []gqlerrors.FormattedError{{
			Message:    message,
			Extensions: map[string]interface{}{"code": gql.CodeInvalidToken},
		}},
	})
}
