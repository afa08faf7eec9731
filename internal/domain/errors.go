package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrForbidden    = errors.New("acceso denegado")
)

// ValidationError agrupa TODOS los mensajes de validación de un borrador de
// movimiento, para que el cliente pueda mostrar todas las correcciones de una
// sola vez. Lista no vacía = movimiento rechazado, nunca aplicado parcialmente.
type ValidationError struct {
	Messages []string
}

// Error implementa error.
func (e *ValidationError) Error() string {
	return "validación: " + strings.Join(e.Messages, "; ")
}

// AsValidationError devuelve el *ValidationError envuelto en err, o nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
