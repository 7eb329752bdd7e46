package ports

import (
	"context"

	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// DocumentService define el puerto de salida hacia el servicio remoto de gestión documental.
// Cada llamada debe respetar el deadline del contexto; los fallos de transporte o HTTP
// distinto de 200 se devuelven como *domain.NetworkError.
type DocumentService interface {
	// FetchSecretKey obtiene la clave secreta que exige el endpoint de autenticación.
	FetchSecretKey(ctx context.Context) (string, error)

	// Authenticate intercambia credenciales y clave secreta por un token de sesión.
	Authenticate(ctx context.Context, creds entity.Credentials, secretKey string) (*entity.AuthResponse, error)

	// FetchManagementData devuelve los registros de documentación del período y entidad
	// de query, en el orden en que los envía el servicio.
	FetchManagementData(ctx context.Context, token string, query entity.ManagementQuery) ([]entity.Documentacion, error)
}
