// @title           Gestión Docs API
// @version         1.0
// @description     API local para consultar la documentación requerida del servicio TPR DocUX.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/gestion-docs/docs"
	"github.com/jhoicas/gestion-docs/internal/application/auth"
	"github.com/jhoicas/gestion-docs/internal/application/documentacion"
	docdomain "github.com/jhoicas/gestion-docs/internal/domain/documentacion"
	"github.com/jhoicas/gestion-docs/internal/domain/repository"
	"github.com/jhoicas/gestion-docs/internal/infrastructure/docservice"
	infrapdf "github.com/jhoicas/gestion-docs/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-docs/internal/infrastructure/postgres"
	"github.com/jhoicas/gestion-docs/internal/infrastructure/sessionstore"
	"github.com/jhoicas/gestion-docs/internal/interfaces/cli"
	httpRouter "github.com/jhoicas/gestion-docs/internal/interfaces/http"
	"github.com/jhoicas/gestion-docs/pkg/config"
	"github.com/jhoicas/gestion-docs/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("session_store", cfg.Session.Store).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("almacenamiento de sesión")
		os.Exit(1)
	}
	defer closeStore()

	client := docservice.NewClient(docservice.Config{
		SecretKeyURL:  cfg.Docs.SecretKeyURL,
		AuthURL:       cfg.Docs.AuthURL,
		ManagementURL: cfg.Docs.ManagementURL,
		UserAgent:     cfg.Docs.UserAgent,
		Timeout:       cfg.Docs.Timeout,
	}, log.Component("docservice"))

	session := auth.NewSession(log.Component("auth"))
	authUC := auth.NewAuthUseCase(client, session, store, log.Component("auth"))
	orch := documentacion.NewOrchestrator(
		authUC, client,
		docdomain.NewClassifier(cfg.Docs.PendingApprovalLabel),
		cfg.Docs.IncludeApproved,
		log.Component("documentacion"),
	)

	// PDF: reporte imprimible de la documentación del período
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	root := cli.NewRootCommand(cli.Deps{
		AuthUC:       authUC,
		Orchestrator: orch,
		Reports:      pdfGenerator,
		ReportTitle:  "Documentación requerida",
		Logger:       log.Component("cli"),
		Serve: func(ctx context.Context) error {
			return serve(ctx, cfg, log, httpRouter.RouterDeps{
				AppName:      cfg.App.Name,
				AuthUC:       authUC,
				Orchestrator: orch,
				Reports:      pdfGenerator,
				JWT: httpRouter.JWTConfig{
					Secret:     cfg.JWT.Secret,
					ExpMinutes: cfg.JWT.Expiration,
					Issuer:     cfg.JWT.Issuer,
				},
			})
		},
	})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		closeStore()
		os.Exit(1)
	}
}

// newSessionStore elige el almacenamiento de credenciales según SESSION_STORE.
func newSessionStore(ctx context.Context, cfg *config.Config) (repository.SessionStore, func(), error) {
	switch cfg.Session.Store {
	case config.SessionStorePostgres:
		if cfg.Session.EncryptionKey == "" {
			return nil, nil, fmt.Errorf("SESSION_ENCRYPTION_KEY es obligatorio con SESSION_STORE=postgres")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewSessionRepository(pool, cfg.Session.EncryptionKey)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	case config.SessionStoreMemory:
		return sessionstore.NewMemoryStore(), func() {}, nil
	default:
		fs, err := sessionstore.NewFileStore(cfg.Session.Dir, cfg.Session.EncryptionKey)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}

// serve levanta la API HTTP y la apaga ordenadamente al cancelarse ctx.
func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, deps httpRouter.RouterDeps) error {
	if deps.JWT.Secret == "" {
		return fmt.Errorf("serve: JWT_SECRET es obligatorio")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Docs.Timeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión Docs API",
	}))

	httpRouter.Router(app, deps)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		errCh <- app.Listen(cfg.HTTP.Addr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
