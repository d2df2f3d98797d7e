package auth

import (
	"context"

	"github.com/jhoicas/crm-ventas-api/pkg/jwt"
)

type identityKey struct{}

// WithIdentity adjunta al contexto la identidad extraída del Bearer token.
func WithIdentity(ctx context.Context, id jwt.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom devuelve la identidad del contexto; ok=false en contexto anónimo.
func IdentityFrom(ctx context.Context) (jwt.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(jwt.Identity)
	return id, ok && id.ID != ""
}

// CallerID devuelve el id del vendedor autenticado o "" si la petición es anónima.
func CallerID(ctx context.Context) string {
	id, _ := IdentityFrom(ctx)
	return id.ID
}
