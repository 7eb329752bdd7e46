package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gestion-docs/internal/domain/entity"
	"github.com/jhoicas/gestion-docs/internal/domain/repository"
	"github.com/jhoicas/gestion-docs/pkg/sealbox"
)

var _ repository.SessionStore = (*SessionRepo)(nil)

const sessionSchema = `
	CREATE TABLE IF NOT EXISTS saved_sessions (
		id         SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		email      TEXT NOT NULL,
		payload    BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`

// SessionRepo implementación de SessionStore sobre PostgreSQL. Guarda una única fila con
// las credenciales cifradas (el email va en claro solo para diagnóstico).
type SessionRepo struct {
	pool       *pgxpool.Pool
	tx         *TxRunner
	passphrase string
	params     sealbox.Params
}

// NewSessionRepository construye el adaptador. passphrase cifra el payload.
func NewSessionRepository(pool *pgxpool.Pool, passphrase string) *SessionRepo {
	return &SessionRepo{pool: pool, tx: NewTxRunner(pool), passphrase: passphrase, params: sealbox.DefaultParams}
}

// EnsureSchema crea la tabla si no existe.
func (r *SessionRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, sessionSchema); err != nil {
		return fmt.Errorf("create saved_sessions: %w", err)
	}
	return nil
}

// Load devuelve la sesión guardada o (nil, nil) si no hay.
func (r *SessionRepo) Load(ctx context.Context) (*entity.Credentials, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM saved_sessions WHERE id = 1`).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get saved session: %w", err)
	}
	raw, err := sealbox.Open(r.passphrase, payload)
	if err != nil {
		return nil, fmt.Errorf("decrypt saved session: %w", err)
	}
	var creds entity.Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("decode saved session: %w", err)
	}
	return &creds, nil
}

// Save reemplaza la sesión guardada dentro de una transacción.
func (r *SessionRepo) Save(ctx context.Context, creds entity.Credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode saved session: %w", err)
	}
	payload, err := sealbox.SealWith(r.passphrase, raw, r.params)
	if err != nil {
		return fmt.Errorf("encrypt saved session: %w", err)
	}
	return r.tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM saved_sessions`); err != nil {
			return fmt.Errorf("delete saved session: %w", err)
		}
		query := `
			INSERT INTO saved_sessions (id, email, payload, updated_at)
			VALUES (1, $1, $2, $3)`
		if _, err := q.Exec(ctx, query, creds.Email, payload, time.Now().UTC()); err != nil {
			return fmt.Errorf("insert saved session: %w", err)
		}
		return nil
	})
}

// Clear borra la sesión guardada.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM saved_sessions`); err != nil && !isUndefinedTable(err) {
		return fmt.Errorf("delete saved session: %w", err)
	}
	return nil
}
