package sessionstore

import (
	"context"
	"sync"

	"github.com/jhoicas/gestion-docs/internal/domain/entity"
	"github.com/jhoicas/gestion-docs/internal/domain/repository"
)

// MemoryStore guarda la sesión solo mientras dura el proceso.
type MemoryStore struct {
	mu    sync.Mutex
	creds *entity.Credentials
}

var _ repository.SessionStore = (*MemoryStore)(nil)

// NewMemoryStore crea un almacén vacío.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load(ctx context.Context) (*entity.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return nil, nil
	}
	c := *s.creds
	return &c, nil
}

func (s *MemoryStore) Save(ctx context.Context, creds entity.Credentials) error {
	s.mu.Lock()
	s.creds = &creds
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.creds = nil
	s.mu.Unlock()
	return nil
}
