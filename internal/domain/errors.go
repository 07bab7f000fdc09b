package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidToken indica que el token de la petición no corresponde a ninguna sesión.
	ErrInvalidToken = errors.New("invalid token")
	// ErrAuthFailed indica credenciales inválidas en login.
	ErrAuthFailed = errors.New("invalid username or password")
	// ErrForbidden indica que la operación requiere rol de administrador.
	ErrForbidden = errors.New("only admins can do this")
	// ErrUsernameTaken indica violación de la unicidad de username.
	ErrUsernameTaken = errors.New("username already in use")
)

// ValidationError describe un campo ausente o con valor inválido.
type ValidationError struct {
	Field   string
	Reason  string
	Missing bool
}

func (e *ValidationError) Error() string {
	if e.Missing {
		return fmt.Sprintf("field %s must be present, but was missing", e.Field)
	}
	return fmt.Sprintf("while validating %s: %s", e.Field, e.Reason)
}

// NewInvalidField construye el error para un campo presente pero inválido.
func NewInvalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewMissingField construye el error para un campo obligatorio ausente.
func NewMissingField(field string) error {
	return &ValidationError{Field: field, Missing: true}
}

// NotFoundError indica que una entidad referenciada no existe o no pertenece
// al usuario que la solicita. Ambos casos comparten mensaje a propósito:
// no se debe poder distinguir un id ajeno de un id inexistente.
type NotFoundError struct {
	Kind string // printer, job, group, user
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such %s: %d", e.Kind, e.ID)
}

// NewNotFound construye un NotFoundError para la entidad indicada.
func NewNotFound(kind string, id int64) error {
	return &NotFoundError{Kind: kind, ID: id}
}
