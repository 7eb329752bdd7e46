package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	// Validación de credenciales.
	ErrMissingField       = errors.New("todos los campos son requeridos")
	ErrInvalidEmailFormat = errors.New("formato de email inválido")

	// Autenticación contra el servicio de documentación.
	ErrSecretKeyUnavailable   = errors.New("no se pudo obtener la clave secreta")
	ErrAuthenticationRejected = errors.New("autenticación rechazada")
	ErrMalformedResponse      = errors.New("respuesta de autenticación incompleta")

	// Sesión.
	ErrNotAuthenticated = errors.New("sesión no autenticada")
	ErrNoStoredSession  = errors.New("no hay sesión guardada válida")
	ErrUnauthorized     = errors.New("no autorizado")
)

// ValidationError credenciales inválidas; Err es ErrMissingField o ErrInvalidEmailFormat.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NetworkError fallo de una llamada HTTP al servicio remoto.
// Status es 0 cuando no hubo respuesta (timeout, conexión rechazada).
type NetworkError struct {
	Op     string
	URL    string
	Status int
	Body   string
	Err    error
}

func (e *NetworkError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.URL)
	if e.Status != 0 {
		msg += fmt.Sprintf(": HTTP %d", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Body != "" {
		msg += ": " + truncate(e.Body, 200)
	}
	return msg
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthFailure fallo de autenticación. Kind es uno de ErrSecretKeyUnavailable,
// ErrAuthenticationRejected o ErrMalformedResponse; Status y Body se copian de la
// respuesta remota cuando la hubo.
type AuthFailure struct {
	Kind   error
	Status int
	Body   string
	Err    error
}

func (e *AuthFailure) Error() string {
	msg := e.Kind.Error()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AuthFailure) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ClassificationWarning problema no fatal al clasificar un registro; el registro
// se conserva con valores por defecto.
type ClassificationWarning struct {
	Field  string
	Value  string
	Reason string
}

func (w ClassificationWarning) String() string {
	return fmt.Sprintf("%s=%q: %s", w.Field, w.Value, w.Reason)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
