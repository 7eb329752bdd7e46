// Package docservice implementa el cliente HTTP del servicio remoto de gestión documental.
package docservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/gestion-docs/internal/application/ports"
	"github.com/jhoicas/gestion-docs/internal/domain"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// maxBodyBytes límite de lectura de cualquier respuesta del servicio.
const maxBodyBytes = 4 << 20

// Config endpoints y parámetros del cliente.
type Config struct {
	SecretKeyURL  string
	AuthURL       string
	ManagementURL string
	UserAgent     string
	Timeout       time.Duration // por llamada; cero usa 30 s
}

// Client implementa ports.DocumentService sobre net/http.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ ports.DocumentService = (*Client)(nil)

// NewClient construye el cliente.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// FetchSecretKey obtiene la clave secreta (campo Valor).
func (c *Client) FetchSecretKey(ctx context.Context) (string, error) {
	const op = "docservice: clave secreta"

	body, err := c.do(ctx, op, http.MethodGet, c.cfg.SecretKeyURL, "", nil)
	if err != nil {
		return "", err
	}

	var resp secretKeyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &domain.NetworkError{Op: op, URL: c.cfg.SecretKeyURL, Status: http.StatusOK, Body: string(body), Err: fmt.Errorf("decodificar respuesta: %w", err)}
	}
	if resp.Valor == "" {
		return "", &domain.NetworkError{Op: op, URL: c.cfg.SecretKeyURL, Status: http.StatusOK, Body: string(body), Err: errors.New("respuesta sin Valor")}
	}
	return resp.Valor.String(), nil
}

// Authenticate envía credenciales y clave secreta. Un cuerpo que no es JSON se reporta
// como domain.ErrMalformedResponse; los campos faltantes los valida quien llama.
func (c *Client) Authenticate(ctx context.Context, creds entity.Credentials, secretKey string) (*entity.AuthResponse, error) {
	const op = "docservice: autenticar"

	payload, err := json.Marshal(authenticateRequest{
		Denominacion: creds.Email,
		Clave:        creds.Password,
		SecretKey:    secretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: serializar request: %w", op, err)
	}

	body, err := c.do(ctx, op, http.MethodPost, c.cfg.AuthURL, "", payload)
	if err != nil {
		return nil, err
	}

	var resp entity.AuthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, domain.ErrMalformedResponse, err)
	}
	return &resp, nil
}

// FetchManagementData descarga los registros del período. Cada elemento del array se
// decodifica por separado: uno malformado queda como registro vacío y no corta la descarga.
func (c *Client) FetchManagementData(ctx context.Context, token string, query entity.ManagementQuery) ([]entity.Documentacion, error) {
	const op = "docservice: gestión documental"

	payload, err := json.Marshal(newManagementRequest(query))
	if err != nil {
		return nil, fmt.Errorf("%s: serializar request: %w", op, err)
	}

	body, err := c.do(ctx, op, http.MethodPost, c.cfg.ManagementURL, token, payload)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &domain.NetworkError{Op: op, URL: c.cfg.ManagementURL, Status: http.StatusOK, Body: string(body), Err: fmt.Errorf("se esperaba un array JSON: %w", err)}
	}

	docs := make([]entity.Documentacion, len(raw))
	for i, elem := range raw {
		if err := json.Unmarshal(elem, &docs[i]); err != nil {
			c.logger.Warn().Int("registro", i).Err(err).Msg("registro ilegible, se conserva vacío")
			docs[i] = entity.Documentacion{}
		}
	}
	return docs, nil
}

// do ejecuta la request con los headers fijos del servicio y devuelve el cuerpo si el
// estado es 200. Cualquier otro resultado es *domain.NetworkError.
func (c *Client) do(ctx context.Context, op, method, url, token string, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, URL: url, Err: err}
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.NetworkError{Op: op, URL: url, Status: resp.StatusCode, Err: fmt.Errorf("leer respuesta: %w", err)}
	}

	c.logger.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("duracion", time.Since(start)).
		Int("bytes", len(body)).
		Msg("respuesta del servicio")

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.NetworkError{Op: op, URL: url, Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
