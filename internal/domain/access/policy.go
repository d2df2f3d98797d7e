// Package access contiene la política de autorización: un vendedor solo puede leer
// o modificar clientes y pedidos de los que es dueño.
package access

import "github.com/jhoicas/crm-ventas-api/internal/domain"

// RequireCaller falla si la petición no trae identidad (contexto anónimo).
func RequireCaller(callerID string) error {
	if callerID == "" {
		return domain.ErrUnauthenticated
	}
	return nil
}

// EnsureOwner aplica la regla única de propiedad: recurso.vendedor == caller.id.
// Quien llama debe comprobar antes que el recurso existe (NotFound va primero).
func EnsureOwner(ownerID, callerID string) error {
	if err := RequireCaller(callerID); err != nil {
		return err
	}
	if ownerID != callerID {
		return domain.ErrForbidden
	}
	return nil
}
