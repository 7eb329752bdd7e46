// Package documentacion orquesta el flujo completo de un intento de consulta:
// validación, autenticación, descarga de registros, clasificación y orden.
package documentacion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/gestion-docs/internal/application/auth"
	"github.com/jhoicas/gestion-docs/internal/application/ports"
	"github.com/jhoicas/gestion-docs/internal/domain"
	docdomain "github.com/jhoicas/gestion-docs/internal/domain/documentacion"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// Result registros clasificados y ordenados de un período.
type Result struct {
	Query   entity.ManagementQuery
	Records []entity.ClassifiedRecord
	Summary docdomain.Summary
}

// Orchestrator encadena los pasos; el primero que falla corta el flujo.
type Orchestrator struct {
	auth            *auth.AuthUseCase
	svc             ports.DocumentService
	classifier      *docdomain.Classifier
	includeApproved bool
	now             func() time.Time
	logger          zerolog.Logger
}

// Option configura el orquestador.
type Option func(*Orchestrator)

// WithClock reemplaza el reloj (período consultado y cálculo de días).
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// NewOrchestrator construye el orquestador.
func NewOrchestrator(authUC *auth.AuthUseCase, svc ports.DocumentService, classifier *docdomain.Classifier, includeApproved bool, logger zerolog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		auth:            authUC,
		svc:             svc,
		classifier:      classifier,
		includeApproved: includeApproved,
		now:             time.Now,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run ejecuta un intento completo con las credenciales dadas.
func (o *Orchestrator) Run(ctx context.Context, creds entity.Credentials) (*Result, error) {
	log := o.logger.With().Str("intento_id", uuid.NewString()).Logger()
	log.Info().Str("email", creds.Email).Msg("iniciando consulta de documentación")

	info, err := o.auth.Login(ctx, creds)
	if err != nil {
		log.Error().Err(err).Msg("login fallido")
		return nil, err
	}
	return o.list(ctx, info, log)
}

// Current consulta con la sesión ya autenticada. Devuelve domain.ErrNotAuthenticated si no hay.
func (o *Orchestrator) Current(ctx context.Context) (*Result, error) {
	info, ok := o.auth.Session().Info()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return o.List(ctx, info)
}

// List descarga, clasifica y ordena los registros del mes en curso para la sesión dada.
func (o *Orchestrator) List(ctx context.Context, info entity.SessionInfo) (*Result, error) {
	return o.list(ctx, info, o.logger)
}

func (o *Orchestrator) list(ctx context.Context, info entity.SessionInfo, log zerolog.Logger) (*Result, error) {
	now := o.now()
	query := entity.NewManagementQuery(now, info.EntityID, o.includeApproved)

	docs, err := o.svc.FetchManagementData(ctx, info.Token, query)
	if err != nil {
		log.Error().Err(err).Int("mes", query.Month).Int("anio", query.Year).Msg("no se pudieron obtener los registros")
		return nil, fmt.Errorf("documentacion: obtener registros: %w", err)
	}

	classified := o.classifier.ClassifyAll(docs, now)
	for i, rec := range classified {
		for _, w := range rec.Warnings {
			log.Warn().Int("registro", i).Str("documento", rec.Display.Document).Msg(w.String())
		}
	}
	sorted := docdomain.Sort(classified)

	log.Info().Int("registros", len(sorted)).Int("entidad_id", info.EntityID).Msg("documentación clasificada")
	return &Result{Query: query, Records: sorted, Summary: docdomain.Summarize(sorted)}, nil
}

// Report arma los datos del reporte imprimible del resultado.
func (r *Result) Report(title string, generatedAt time.Time) ports.DocumentacionReport {
	return ports.DocumentacionReport{
		Title:       title,
		Query:       r.Query,
		GeneratedAt: generatedAt,
		Records:     r.Records,
		Summary:     r.Summary,
	}
}
