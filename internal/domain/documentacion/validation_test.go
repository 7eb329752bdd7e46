package documentacion_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-docs/internal/domain"
	"github.com/jhoicas/gestion-docs/internal/domain/documentacion"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

func TestValidateCredentials_CampoFaltante(t *testing.T) {
	casos := []struct {
		nombre string
		creds  entity.Credentials
		campo  string
	}{
		{"sin email", entity.Credentials{Password: "x"}, "email"},
		{"sin password", entity.Credentials{Email: "a@b"}, "password"},
		{"ambos vacíos", entity.Credentials{}, "email"},
		{"email sin arroba y sin password", entity.Credentials{Email: "ab"}, "password"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := documentacion.ValidateCredentials(c.creds)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMissingField)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, c.campo, verr.Field)
		})
	}
}

func TestValidateCredentials_EmailSinArroba(t *testing.T) {
	for _, email := range []string{"usuario", "usuario.dominio.com", " "} {
		err := documentacion.ValidateCredentials(entity.Credentials{Email: email, Password: "secreta"})
		assert.ErrorIs(t, err, domain.ErrInvalidEmailFormat, "email %q", email)
		assert.NotErrorIs(t, err, domain.ErrMissingField)
	}
}

func TestValidateCredentials_Valida(t *testing.T) {
	assert.NoError(t, documentacion.ValidateCredentials(entity.Credentials{Email: "a@b", Password: "p"}))
	assert.NoError(t, documentacion.ValidateCredentials(entity.Credentials{
		Email: "gestor@transporte.com.ar", Password: "secreta", KeepLoggedIn: true,
	}))
}
