package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Docs    DocsConfig
	Session SessionConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DocsConfig endpoints y parámetros del servicio remoto de gestión documental.
type DocsConfig struct {
	SecretKeyURL         string
	AuthURL              string
	ManagementURL        string
	UserAgent            string
	Timeout              time.Duration
	IncludeApproved      bool   // IncluirDocumentacionAprobada en la consulta
	PendingApprovalLabel string // etiqueta canónica del estado "esperando aprobación"
}

// Valores por defecto del servicio remoto.
const (
	DefaultSecretKeyURL  = "https://docs.tpr.com.ar:2001/DocUXApi/api/RegistroEntidad/getSecretKey?param=459"
	DefaultAuthURL       = "https://docs.tpr.com.ar:2001/CommonApi/api/Usuarios/authenticate"
	DefaultManagementURL = "https://docs.tpr.com.ar:2001/DocUXApi/api/DocumentacionesRequeridas/getGestionDocsRequeridas"
	DefaultUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:134.0) Gecko/20100101 Firefox/134.0"

	DefaultPendingApprovalLabel = "Esperando aprobación"
)

// Tipos de almacenamiento de sesión soportados.
const (
	SessionStoreFile     = "file"
	SessionStorePostgres = "postgres"
	SessionStoreMemory   = "memory"
)

// SessionConfig persistencia de credenciales ("mantenerse conectado").
type SessionConfig struct {
	Store         string // file | postgres | memory
	Dir           string // directorio del archivo cifrado (Store == file)
	EncryptionKey string // passphrase del sobre cifrado
}

// DBConfig configuración de PostgreSQL (solo si SESSION_STORE=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de los tokens locales de la API HTTP.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DOCS_AUTH_URL, SESSION_STORE, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "gestion-docs"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Docs: DocsConfig{
			SecretKeyURL:         getString(v, "DOCS_SECRET_KEY_URL", DefaultSecretKeyURL),
			AuthURL:              getString(v, "DOCS_AUTH_URL", DefaultAuthURL),
			ManagementURL:        getString(v, "DOCS_MANAGEMENT_URL", DefaultManagementURL),
			UserAgent:            getString(v, "DOCS_USER_AGENT", DefaultUserAgent),
			Timeout:              time.Duration(getInt(v, "DOCS_TIMEOUT_SECONDS", 30)) * time.Second,
			IncludeApproved:      getBool(v, "DOCS_INCLUDE_APPROVED", true),
			PendingApprovalLabel: getString(v, "DOCS_PENDING_APPROVAL_LABEL", DefaultPendingApprovalLabel),
		},
		Session: SessionConfig{
			Store:         strings.ToLower(getString(v, "SESSION_STORE", SessionStoreFile)),
			Dir:           getString(v, "SESSION_DIR", defaultSessionDir()),
			EncryptionKey: getString(v, "SESSION_ENCRYPTION_KEY", ""),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gestion_docs"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "gestion-docs"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	if cfg.Docs.Timeout <= 0 {
		return nil, fmt.Errorf("config: DOCS_TIMEOUT_SECONDS debe ser mayor que cero")
	}
	switch cfg.Session.Store {
	case SessionStoreFile, SessionStorePostgres, SessionStoreMemory:
	default:
		return nil, fmt.Errorf("config: SESSION_STORE desconocido %q (usar file, postgres o memory)", cfg.Session.Store)
	}
	return cfg, nil
}

// defaultSessionDir devuelve ~/.gestion-docs, o el directorio actual si no hay HOME.
func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gestion-docs"
	}
	return filepath.Join(home, ".gestion-docs")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		if b, ok := v.Get(key).(bool); ok {
			return b
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
