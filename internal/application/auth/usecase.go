package auth

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestion-docs/internal/application/ports"
	"github.com/jhoicas/gestion-docs/internal/domain"
	"github.com/jhoicas/gestion-docs/internal/domain/documentacion"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
	"github.com/jhoicas/gestion-docs/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: login, restauración de sesión guardada y logout.
type AuthUseCase struct {
	svc     ports.DocumentService
	session *Session
	store   repository.SessionStore
	logger  zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(svc ports.DocumentService, session *Session, store repository.SessionStore, logger zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{svc: svc, session: session, store: store, logger: logger}
}

// Session devuelve la sesión compartida.
func (uc *AuthUseCase) Session() *Session { return uc.session }

// Login valida las credenciales, autentica y guarda o borra la sesión según KeepLoggedIn.
// Un fallo del almacenamiento no invalida el login: se registra y se sigue.
func (uc *AuthUseCase) Login(ctx context.Context, creds entity.Credentials) (entity.SessionInfo, error) {
	if err := documentacion.ValidateCredentials(creds); err != nil {
		return entity.SessionInfo{}, err
	}

	info, err := uc.session.Authenticate(ctx, uc.svc, creds)
	if err != nil {
		return entity.SessionInfo{}, err
	}
	uc.persist(ctx, creds)
	return info, nil
}

// Relogin verifica las credenciales contra el servicio aunque haya un token cacheado. Solo
// si la autenticación es exitosa reemplaza la sesión; si falla, la anterior sigue vigente.
func (uc *AuthUseCase) Relogin(ctx context.Context, creds entity.Credentials) (entity.SessionInfo, error) {
	if err := documentacion.ValidateCredentials(creds); err != nil {
		return entity.SessionInfo{}, err
	}

	info, err := NewSession(uc.logger).Authenticate(ctx, uc.svc, creds)
	if err != nil {
		return entity.SessionInfo{}, err
	}
	uc.session.Replace(info)
	uc.persist(ctx, creds)
	return info, nil
}

// persist guarda o borra la sesión según KeepLoggedIn.
func (uc *AuthUseCase) persist(ctx context.Context, creds entity.Credentials) {
	if creds.KeepLoggedIn {
		if err := uc.store.Save(ctx, creds); err != nil {
			uc.logger.Warn().Err(err).Msg("no se pudo guardar la sesión")
		}
	} else if err := uc.store.Clear(ctx); err != nil {
		uc.logger.Warn().Err(err).Msg("no se pudo borrar la sesión guardada")
	}
}

// Restore devuelve las credenciales guardadas si existen y son válidas. En cualquier otro
// caso devuelve domain.ErrNoStoredSession y hay que pedir credenciales nuevas.
func (uc *AuthUseCase) Restore(ctx context.Context) (entity.Credentials, error) {
	creds, err := uc.store.Load(ctx)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("no se pudo leer la sesión guardada")
		return entity.Credentials{}, domain.ErrNoStoredSession
	}
	if creds == nil {
		return entity.Credentials{}, domain.ErrNoStoredSession
	}
	if err := documentacion.ValidateCredentials(*creds); err != nil {
		uc.logger.Warn().Err(err).Msg("sesión guardada inválida")
		return entity.Credentials{}, domain.ErrNoStoredSession
	}
	return *creds, nil
}

// Logout descarta el token cacheado y la sesión guardada.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	uc.session.Clear()
	if err := uc.store.Clear(ctx); err != nil {
		return fmt.Errorf("auth: logout: %w", err)
	}
	uc.logger.Info().Msg("sesión cerrada")
	return nil
}
