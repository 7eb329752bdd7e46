package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DefaultSecretKeyURL, cfg.Docs.SecretKeyURL)
	assert.Equal(t, DefaultAuthURL, cfg.Docs.AuthURL)
	assert.Equal(t, DefaultManagementURL, cfg.Docs.ManagementURL)
	assert.Equal(t, DefaultUserAgent, cfg.Docs.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.Docs.Timeout)
	assert.True(t, cfg.Docs.IncludeApproved)
	assert.Equal(t, "Esperando aprobación", cfg.Docs.PendingApprovalLabel)
	assert.Equal(t, SessionStoreFile, cfg.Session.Store)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
}

func TestFromViper_EnvSobrescribe(t *testing.T) {
	v := viper.New()
	v.Set("DOCS_AUTH_URL", "http://localhost:9000/auth")
	v.Set("DOCS_TIMEOUT_SECONDS", "5")
	v.Set("DOCS_INCLUDE_APPROVED", "false")
	v.Set("DOCS_PENDING_APPROVAL_LABEL", "Pendiente aprobación")
	v.Set("SESSION_STORE", "MEMORY")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/auth", cfg.Docs.AuthURL)
	assert.Equal(t, 5*time.Second, cfg.Docs.Timeout)
	assert.False(t, cfg.Docs.IncludeApproved)
	assert.Equal(t, "Pendiente aprobación", cfg.Docs.PendingApprovalLabel)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
}

func TestFromViper_SessionStoreDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("SESSION_STORE", "redis")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_TimeoutInvalido(t *testing.T) {
	v := viper.New()
	v.Set("DOCS_TIMEOUT_SECONDS", "0")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "gestion_docs", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/gestion_docs?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
