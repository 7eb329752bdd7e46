package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-docs/internal/application/auth"
	"github.com/jhoicas/gestion-docs/internal/domain"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

type fakeStore struct {
	creds   *entity.Credentials
	loadErr error
	saves   int
	clears  int
}

func (f *fakeStore) Load(ctx context.Context) (*entity.Credentials, error) {
	return f.creds, f.loadErr
}

func (f *fakeStore) Save(ctx context.Context, c entity.Credentials) error {
	f.saves++
	f.creds = &c
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.clears++
	f.creds = nil
	return nil
}

func newUseCase(svc *fakeService, store *fakeStore) *auth.AuthUseCase {
	return auth.NewAuthUseCase(svc, auth.NewSession(zerolog.Nop()), store, zerolog.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidasNoLlamaAlServicio(t *testing.T) {
	svc := &fakeService{resp: okResponse()}
	uc := newUseCase(svc, &fakeStore{})

	_, err := uc.Login(context.Background(), entity.Credentials{Email: "sin-arroba", Password: "x"})

	assert.ErrorIs(t, err, domain.ErrInvalidEmailFormat)
	assert.EqualValues(t, 0, svc.keyCalls.Load())
}

func TestLogin_MantenerGuardaSesion(t *testing.T) {
	store := &fakeStore{}
	uc := newUseCase(&fakeService{resp: okResponse()}, store)

	c := creds
	c.KeepLoggedIn = true
	info, err := uc.Login(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, 459, info.EntityID)
	assert.Equal(t, 1, store.saves)
	require.NotNil(t, store.creds)
	assert.Equal(t, c, *store.creds)
}

func TestLogin_SinMantenerBorraSesion(t *testing.T) {
	store := &fakeStore{creds: &entity.Credentials{Email: "viejo@x.com", Password: "p"}}
	uc := newUseCase(&fakeService{resp: okResponse()}, store)

	_, err := uc.Login(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, 0, store.saves)
	assert.Equal(t, 1, store.clears)
	assert.Nil(t, store.creds)
}

func TestLogin_FalloNoTocaElAlmacen(t *testing.T) {
	store := &fakeStore{}
	uc := newUseCase(&fakeService{authErr: errors.New("rechazado")}, store)

	c := creds
	c.KeepLoggedIn = true
	_, err := uc.Login(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrAuthenticationRejected)
	assert.Equal(t, 0, store.saves)
	assert.Equal(t, 0, store.clears)
}

func TestRelogin_FalloConservaSesionAnterior(t *testing.T) {
	svc := &fakeService{resp: okResponse()}
	store := &fakeStore{}
	uc := newUseCase(svc, store)

	_, err := uc.Login(context.Background(), creds)
	require.NoError(t, err)

	_, err = uc.Relogin(context.Background(), entity.Credentials{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	svc.authErr = errors.New("rechazado")
	_, err = uc.Relogin(context.Background(), creds)
	require.ErrorIs(t, err, domain.ErrAuthenticationRejected)

	info, ok := uc.Session().Info()
	require.True(t, ok, "un relogin fallido no cierra la sesión")
	assert.Equal(t, "tok-123", info.Token)
	assert.Equal(t, int32(2), svc.authCalls.Load())
}

func TestRelogin_ReemplazaTokenCacheado(t *testing.T) {
	svc := &fakeService{resp: okResponse()}
	uc := newUseCase(svc, &fakeStore{})

	_, err := uc.Login(context.Background(), creds)
	require.NoError(t, err)

	svc.resp = &entity.AuthResponse{Token: "tok-nuevo", EntidadesContacto: []entity.EntidadContacto{{EntidadID: intPtr(460)}}}
	got, err := uc.Relogin(context.Background(), creds)
	require.NoError(t, err)

	info, ok := uc.Session().Info()
	require.True(t, ok)
	assert.Equal(t, got, info)
	assert.Equal(t, entity.SessionInfo{Token: "tok-nuevo", EntityID: 460}, info)
	assert.Equal(t, int32(2), svc.authCalls.Load(), "relogin autentica aunque haya token cacheado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Restore / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestRestore(t *testing.T) {
	guardadas := entity.Credentials{Email: "a@b.com", Password: "p", KeepLoggedIn: true}

	got, err := newUseCase(&fakeService{}, &fakeStore{creds: &guardadas}).Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, guardadas, got)

	casos := map[string]*fakeStore{
		"sin sesión":       {},
		"error de lectura": {loadErr: errors.New("archivo corrupto")},
		"sesión inválida":  {creds: &entity.Credentials{Email: "a@b.com"}},
	}
	for nombre, store := range casos {
		t.Run(nombre, func(t *testing.T) {
			_, err := newUseCase(&fakeService{}, store).Restore(context.Background())
			assert.ErrorIs(t, err, domain.ErrNoStoredSession)
		})
	}
}

func TestLogout_LimpiaCacheYAlmacen(t *testing.T) {
	svc := &fakeService{resp: okResponse()}
	store := &fakeStore{}
	uc := newUseCase(svc, store)

	c := creds
	c.KeepLoggedIn = true
	_, err := uc.Login(context.Background(), c)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background()))

	_, ok := uc.Session().Info()
	assert.False(t, ok)
	assert.Nil(t, store.creds)
}
