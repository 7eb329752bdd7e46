package repository

import (
	"context"

	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// SessionStore define el puerto de persistencia de credenciales ("mantenerse conectado").
// La implementación vive en infrastructure (archivo cifrado, PostgreSQL o memoria).
type SessionStore interface {
	// Load devuelve las credenciales guardadas, o (nil, nil) si no hay ninguna.
	Load(ctx context.Context) (*entity.Credentials, error)
	Save(ctx context.Context, creds entity.Credentials) error
	// Clear borra la sesión guardada; no falla si no existía.
	Clear(ctx context.Context) error
}
