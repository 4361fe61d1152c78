package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// ValidationError agrupa errores de validación por campo del formulario.
// Envuelve ErrInvalidInput para que errors.Is siga funcionando en los handlers.
type ValidationError struct {
	Fields map[string]string // campo -> mensaje para el usuario
}

// NewValidationError construye el error con un mapa campo -> mensaje.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
