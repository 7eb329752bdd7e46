// Package sessionstore guarda las credenciales de "mantenerse conectado" fuera de la base.
package sessionstore

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/gestion-docs/internal/domain/entity"
	"github.com/jhoicas/gestion-docs/internal/domain/repository"
	"github.com/jhoicas/gestion-docs/pkg/sealbox"
)

const (
	sessionFile = "session.enc"
	keyFile     = "session.key"
)

// FileStore guarda las credenciales cifradas en un archivo del directorio dado.
// Sin passphrase configurada genera una clave aleatoria y la persiste junto al archivo.
type FileStore struct {
	mu         sync.Mutex
	path       string
	passphrase string
	params     sealbox.Params
}

var _ repository.SessionStore = (*FileStore)(nil)

// FileOption configura el FileStore.
type FileOption func(*FileStore)

// WithParams cambia los parámetros scrypt (tests).
func WithParams(p sealbox.Params) FileOption {
	return func(s *FileStore) { s.params = p }
}

// NewFileStore crea el directorio (0700) si no existe.
func NewFileStore(dir, passphrase string, opts ...FileOption) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("sessionstore: crear directorio: %w", err)
	}
	if passphrase == "" {
		key, err := loadOrCreateKey(filepath.Join(dir, keyFile))
		if err != nil {
			return nil, err
		}
		passphrase = key
	}
	s := &FileStore{
		path:       filepath.Join(dir, sessionFile),
		passphrase: passphrase,
		params:     sealbox.DefaultParams,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load implementa repository.SessionStore.
func (s *FileStore) Load(ctx context.Context) (*entity.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("sessionstore: leer %s: %w", s.path, err)
	}
	if b == nil {
		return nil, nil
	}
	raw, err := sealbox.Open(s.passphrase, b)
	if err != nil {
		return nil, fmt.Errorf("sessionstore: descifrar: %w", err)
	}
	var creds entity.Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("sessionstore: decodificar: %w", err)
	}
	return &creds, nil
}

// Save implementa repository.SessionStore.
func (s *FileStore) Save(ctx context.Context, creds entity.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("sessionstore: serializar: %w", err)
	}
	b, err := sealbox.SealWith(s.passphrase, raw, s.params)
	if err != nil {
		return fmt.Errorf("sessionstore: cifrar: %w", err)
	}
	if err := writeFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("sessionstore: escribir %s: %w", s.path, err)
	}
	return nil
}

// Clear implementa repository.SessionStore.
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("sessionstore: borrar %s: %w", s.path, err)
	}
	return nil
}

// loadOrCreateKey lee la clave local o genera una de 32 bytes aleatorios.
func loadOrCreateKey(path string) (string, error) {
	b, err := readFile(path)
	if err != nil {
		return "", fmt.Errorf("sessionstore: leer clave: %w", err)
	}
	if len(b) > 0 {
		return string(b), nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("sessionstore: generar clave: %w", err)
	}
	key := base64.RawURLEncoding.EncodeToString(buf)
	if err := writeFile(path, []byte(key), 0o600); err != nil {
		return "", fmt.Errorf("sessionstore: guardar clave: %w", err)
	}
	return key, nil
}
