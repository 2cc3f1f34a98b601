package gql

import (
	"errors"

	"github.com/jhoicas/accounts-api/internal/domain"
)

// Códigos en extensions.code.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

const msgInternal = "Internal server error"

// apiError error de resolver con extensiones; graphql-go las copia a la respuesta.
type apiError struct {
	message    string
	extensions map[string]interface{}
}

func (e *apiError) Error() string { return e.message }

func (e *apiError) Extensions() map[string]interface{} { return e.extensions }

// classify traduce un error de la aplicación a su forma pública.
// internal=true indica un error no tipado (se registra y se oculta).
func classify(err error) (out *apiError, internal bool) {
	var (
		authErr  *domain.AuthenticationError
		inputErr *domain.UserInputError
		notFound *domain.NotFoundError
	)
	switch {
	case errors.As(err, &authErr):
		ext := map[string]interface{}{"code": CodeUnauthenticated}
		if len(authErr.Errors) > 0 {
			ext["errors"] = authErr.Errors
		}
		return &apiError{message: authErr.Message, extensions: ext}, false
	case errors.As(err, &inputErr):
		return &apiError{
			message:    inputErr.Message,
			extensions: map[string]interface{}{"code": CodeBadUserInput, "errors": inputErr.Errors},
		}, false
	case errors.As(err, &notFound):
		return &apiError{message: notFound.Message, extensions: map[string]interface{}{"code": CodeNotFound}}, false
	default:
		return &apiError{message: msgInternal, extensions: map[string]interface{}{"code": CodeInternal}}, true
	}
}
