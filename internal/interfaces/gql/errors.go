package gql

import (
	"errors"

	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/rs/zerolog"
)

// Códigos estables expuestos en extensions.code.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeConflict           = "CONFLICT"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeBadUserInput       = "BAD_USER_INPUT"
	CodeInternal           = "INTERNAL"
)

var errorCodes = []struct {
	target error
	code   string
}{
	{domain.ErrNotFound, CodeNotFound},
	{domain.ErrForbidden, CodeForbidden},
	{domain.ErrConflict, CodeConflict},
	{domain.ErrInsufficientStock, CodeInsufficientStock},
	{domain.ErrInvalidCredentials, CodeInvalidCredentials},
	{domain.ErrInvalidToken, CodeInvalidToken},
	{domain.ErrUnauthenticated, CodeUnauthenticated},
	{domain.ErrInvalidInput, CodeBadUserInput},
}

// Error error de resolver con código. graphql-go copia Extensions() a la respuesta.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Extensions implementa gqlerrors.ExtendedError.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// CodeOf devuelve el código público de un error de dominio, o INTERNAL.
func CodeOf(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.target) {
			return ec.code
		}
	}
	return CodeInternal
}

// toGraphQLError traduce un error de caso de uso. Los errores internos se registran y su
// mensaje no sale al cliente.
func toGraphQLError(log zerolog.Logger, field string, err error) error {
	code := CodeOf(err)
	if code == CodeInternal {
		log.Error().Err(err).Str("field", field).Msg("error interno en resolver")
		return &Error{Code: code, Message: "error interno del servidor"}
	}
	return &Error{Code: code, Message: err.Error()}
}
