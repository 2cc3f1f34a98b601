package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrUsernameTaken   = errors.New("el username ya está registrado")
	ErrEmailTaken      = errors.New("el email ya está registrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
)

// Mensajes visibles por el cliente (contrato del API).
const (
	MsgTokenInvalid = "Token is invalid!"
	MsgNoRights     = "User has no rights!"
)

// AuthenticationError token ausente/inválido/expirado, cuenta del token eliminada o rol insuficiente.
type AuthenticationError struct {
	Message string
	Errors  map[string]string
	cause   error
}

// NewAuthenticationError construye el error; cause puede ser ErrUnauthorized o ErrForbidden.
func NewAuthenticationError(message string, cause error) *AuthenticationError {
	return &AuthenticationError{Message: message, cause: cause}
}

func (e *AuthenticationError) Error() string { return e.Message }

func (e *AuthenticationError) Unwrap() error {
	if e.cause == nil {
		return ErrUnauthorized
	}
	return e.cause
}

// UserInputError violaciones de unicidad, confirmación de password o entrada mal formada.
// Errors lleva el detalle por campo (nombre JSON del campo -> mensaje).
type UserInputError struct {
	Message string
	Errors  map[string]string
}

// NewUserInputError construye un UserInputError con un único campo.
func NewUserInputError(message, field, detail string) *UserInputError {
	return &UserInputError{Message: message, Errors: map[string]string{field: detail}}
}

func (e *UserInputError) Error() string { return e.Message }

func (e *UserInputError) Unwrap() error { return ErrInvalidInput }

// NotFoundError lectura directa (getAccountDetails/getUserDetails) sin registro.
type NotFoundError struct {
	Message string
	kind    error
}

// NewNotFoundError kind debe ser ErrAccountNotFound o ErrUserNotFound.
func NewNotFoundError(message string, kind error) *NotFoundError {
	return &NotFoundError{Message: message, kind: kind}
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return e.kind }
