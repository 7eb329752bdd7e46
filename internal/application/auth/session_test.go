package auth_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-docs/internal/application/auth"
	"github.com/jhoicas/gestion-docs/internal/domain"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del servicio remoto
// ──────────────────────────────────────────────────────────────────────────────

type fakeService struct {
	keyErr  error
	authErr error
	resp    *entity.AuthResponse

	keyCalls  atomic.Int32
	authCalls atomic.Int32
	gotKey    string
}

func (f *fakeService) FetchSecretKey(ctx context.Context) (string, error) {
	f.keyCalls.Add(1)
	if f.keyErr != nil {
		return "", f.keyErr
	}
	return "clave-secreta", nil
}

func (f *fakeService) Authenticate(ctx context.Context, creds entity.Credentials, secretKey string) (*entity.AuthResponse, error) {
	f.authCalls.Add(1)
	f.gotKey = secretKey
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.resp, nil
}

func (f *fakeService) FetchManagementData(ctx context.Context, token string, query entity.ManagementQuery) ([]entity.Documentacion, error) {
	return nil, nil
}

func intPtr(n int) *int { return &n }

func okResponse() *entity.AuthResponse {
	return &entity.AuthResponse{
		Token:             "tok-123",
		EntidadesContacto: []entity.EntidadContacto{{EntidadID: intPtr(459)}},
	}
}

var creds = entity.Credentials{Email: "gestor@empresa.com", Password: "secreta"}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_AutenticaYCachea(t *testing.T) {
	svc := &fakeService{resp: okResponse()}
	s := auth.NewSession(zerolog.Nop())

	info, err := s.Authenticate(context.Background(), svc, creds)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionInfo{Token: "tok-123", EntityID: 459}, info)
	assert.Equal(t, "clave-secreta", svc.gotKey)

	again, err := s.Authenticate(context.Background(), svc, creds)
	require.NoError(t, err)
	assert.Equal(t, info, again)
	assert.EqualValues(t, 1, svc.keyCalls.Load())
	assert.EqualValues(t, 1, svc.authCalls.Load())

	cached, ok := s.Info()
	assert.True(t, ok)
	assert.Equal(t, info, cached)
}

func TestSession_FalloClaveSecreta(t *testing.T) {
	svc := &fakeService{
		keyErr: &domain.NetworkError{Op: "secret key", URL: "http://x", Status: 503, Body: "caído"},
		resp:   okResponse(),
	}
	s := auth.NewSession(zerolog.Nop())

	_, err := s.Authenticate(context.Background(), svc, creds)

	assert.ErrorIs(t, err, domain.ErrSecretKeyUnavailable)
	var af *domain.AuthFailure
	require.True(t, errors.As(err, &af))
	assert.Equal(t, 503, af.Status)
	assert.EqualValues(t, 0, svc.authCalls.Load())
	_, ok := s.Info()
	assert.False(t, ok)
}

func TestSession_AutenticacionRechazada(t *testing.T) {
	svc := &fakeService{authErr: &domain.NetworkError{Op: "authenticate", URL: "http://x", Status: 401, Body: `{"Mensaje":"clave incorrecta"}`}}
	s := auth.NewSession(zerolog.Nop())

	_, err := s.Authenticate(context.Background(), svc, creds)

	assert.ErrorIs(t, err, domain.ErrAuthenticationRejected)
	var af *domain.AuthFailure
	require.True(t, errors.As(err, &af))
	assert.Equal(t, 401, af.Status)
	assert.Contains(t, af.Body, "clave incorrecta")
	var nerr *domain.NetworkError
	assert.True(t, errors.As(err, &nerr))
}

func TestSession_RespuestaIncompleta(t *testing.T) {
	casos := map[string]*entity.AuthResponse{
		"sin token":      {EntidadesContacto: []entity.EntidadContacto{{EntidadID: intPtr(1)}}},
		"sin entidades":  {Token: "t"},
		"entidad sin id": {Token: "t", EntidadesContacto: []entity.EntidadContacto{{}}},
		"respuesta nula": nil,
	}
	for nombre, resp := range casos {
		t.Run(nombre, func(t *testing.T) {
			s := auth.NewSession(zerolog.Nop())
			_, err := s.Authenticate(context.Background(), &fakeService{resp: resp}, creds)

			assert.ErrorIs(t, err, domain.ErrMalformedResponse)
			_, ok := s.Info()
			assert.False(t, ok, "la sesión no debe quedar a medio escribir")
		})
	}
}

func TestSession_ClearInvalida(t *testing.T) {
	svc := &fakeService{resp: okResponse()}
	s := auth.NewSession(zerolog.Nop())

	_, err := s.Authenticate(context.Background(), svc, creds)
	require.NoError(t, err)
	s.Clear()
	_, ok := s.Info()
	assert.False(t, ok)

	_, err = s.Authenticate(context.Background(), svc, creds)
	require.NoError(t, err)
	assert.EqualValues(t, 2, svc.authCalls.Load())
}

func TestSession_ConcurrenteAutenticaUnaVez(t *testing.T) {
	svc := &fakeService{resp: okResponse()}
	s := auth.NewSession(zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Authenticate(context.Background(), svc, creds)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, svc.authCalls.Load())
}
