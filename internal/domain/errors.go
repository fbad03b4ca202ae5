package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrNotReady          = errors.New("operación deshabilitada: línea de pedido no válida")
	ErrInFlight          = errors.New("ya hay una operación en curso para esta línea")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrUnavailable       = errors.New("backend no disponible")
)

// APIError error devuelto por el backend REST externo.
// Unwrap permite comparar con los sentinelas (errors.Is(err, ErrNotFound)).
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend HTTP %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 400 || e.Status == 422:
		return ErrInvalidInput
	case e.Status == 401:
		return ErrUnauthorized
	case e.Status == 403:
		return ErrForbidden
	case e.Status == 404:
		return ErrNotFound
	case e.Status == 409:
		return ErrConflict
	case e.Status >= 500:
		return ErrUnavailable
	}
	return nil
}
