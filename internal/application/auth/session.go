package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestion-docs/internal/application/ports"
	"github.com/jhoicas/gestion-docs/internal/domain"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// Session cachea el token del servicio de documentación y la entidad del usuario.
// Token y entidad se escriben juntos o no se escriben. El token no expira localmente:
// solo Clear (logout) lo invalida.
type Session struct {
	mu     sync.Mutex
	info   *entity.SessionInfo
	logger zerolog.Logger
}

// NewSession crea una sesión vacía.
func NewSession(logger zerolog.Logger) *Session {
	return &Session{logger: logger}
}

// Info devuelve la sesión cacheada, si la hay.
func (s *Session) Info() (entity.SessionInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.info == nil {
		return entity.SessionInfo{}, false
	}
	return *s.info, true
}

// Clear descarta el token cacheado.
func (s *Session) Clear() {
	s.mu.Lock()
	s.info = nil
	s.mu.Unlock()
}

// Replace reemplaza la sesión cacheada por info (token y entidad juntos).
func (s *Session) Replace(info entity.SessionInfo) {
	s.mu.Lock()
	s.info = &info
	s.mu.Unlock()
}

// Authenticate devuelve la sesión cacheada sin llamadas de red o, si no la hay, pide la
// clave secreta y autentica. El lock se mantiene durante todo el intercambio: dos
// llamadas concurrentes no autentican dos veces.
func (s *Session) Authenticate(ctx context.Context, svc ports.DocumentService, creds entity.Credentials) (entity.SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.info != nil {
		s.logger.Debug().Msg("usando token cacheado")
		return *s.info, nil
	}

	key, err := svc.FetchSecretKey(ctx)
	if err != nil {
		status, body := remoteDetail(err)
		return entity.SessionInfo{}, &domain.AuthFailure{Kind: domain.ErrSecretKeyUnavailable, Status: status, Body: body, Err: err}
	}

	resp, err := svc.Authenticate(ctx, creds, key)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedResponse) {
			return entity.SessionInfo{}, &domain.AuthFailure{Kind: domain.ErrMalformedResponse, Err: err}
		}
		status, body := remoteDetail(err)
		return entity.SessionInfo{}, &domain.AuthFailure{Kind: domain.ErrAuthenticationRejected, Status: status, Body: body, Err: err}
	}

	info, err := sessionFrom(resp)
	if err != nil {
		return entity.SessionInfo{}, err
	}
	s.info = &info
	s.logger.Info().Int("entidad_id", info.EntityID).Msg("autenticación exitosa")
	return info, nil
}

func sessionFrom(resp *entity.AuthResponse) (entity.SessionInfo, error) {
	if resp == nil || resp.Token == "" {
		return entity.SessionInfo{}, &domain.AuthFailure{
			Kind: domain.ErrMalformedResponse,
			Err:  errors.New("falta Token"),
		}
	}
	if len(resp.EntidadesContacto) == 0 || resp.EntidadesContacto[0].EntidadID == nil {
		return entity.SessionInfo{}, &domain.AuthFailure{
			Kind: domain.ErrMalformedResponse,
			Err:  errors.New("falta EntidadesContacto[0].EntidadId"),
		}
	}
	return entity.SessionInfo{Token: resp.Token, EntityID: *resp.EntidadesContacto[0].EntidadID}, nil
}

// remoteDetail extrae estado y cuerpo HTTP si el error viene de una respuesta remota.
func remoteDetail(err error) (int, string) {
	var nerr *domain.NetworkError
	if errors.As(err, &nerr) {
		return nerr.Status, nerr.Body
	}
	return 0, ""
}
