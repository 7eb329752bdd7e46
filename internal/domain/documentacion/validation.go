// Package documentacion contiene las reglas de dominio de la gestión documental:
// validación de credenciales, clasificación de registros por estado/vencimiento y orden.
package documentacion

import (
	"strings"

	"github.com/jhoicas/gestion-docs/internal/domain"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// ValidateCredentials valida el par email/password antes de intentar autenticar.
// Devuelve *domain.ValidationError envolviendo ErrMissingField o ErrInvalidEmailFormat.
func ValidateCredentials(c entity.Credentials) error {
	if c.Email == "" {
		return &domain.ValidationError{Field: "email", Err: domain.ErrMissingField}
	}
	if c.Password == "" {
		return &domain.ValidationError{Field: "password", Err: domain.ErrMissingField}
	}
	if !strings.Contains(c.Email, "@") {
		return &domain.ValidationError{Field: "email", Err: domain.ErrInvalidEmailFormat}
	}
	return nil
}
