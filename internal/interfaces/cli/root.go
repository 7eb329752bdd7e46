// Package cli implementa el comando gestiondocs: consulta de documentación requerida
// en la terminal, cierre de sesión y arranque de la API HTTP.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-docs/internal/application/auth"
	"github.com/jhoicas/gestion-docs/internal/application/documentacion"
	"github.com/jhoicas/gestion-docs/internal/application/dto"
	"github.com/jhoicas/gestion-docs/internal/application/ports"
	"github.com/jhoicas/gestion-docs/internal/domain"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// Deps dependencias de los comandos.
type Deps struct {
	AuthUC       *auth.AuthUseCase
	Orchestrator *documentacion.Orchestrator
	Reports      ports.ReportGenerator
	ReportTitle  string
	Prompter     Prompter                        // nil usa la terminal
	Serve        func(ctx context.Context) error // nil deshabilita "serve"
	Logger       zerolog.Logger
}

type documentosFlags struct {
	email    string
	password string
	mantener bool
	asJSON   bool
	pdfPath  string
}

// NewRootCommand arma el árbol de comandos. Sin subcomando se ejecuta "documentos".
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.Prompter == nil {
		deps.Prompter = NewTerminalPrompter()
	}
	if deps.ReportTitle == "" {
		deps.ReportTitle = "Documentación requerida"
	}

	docs := documentosCmd(deps)
	root := &cobra.Command{
		Use:           "gestiondocs",
		Short:         "Consulta la documentación requerida del servicio TPR DocUX",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          docs.RunE,
	}
	root.Flags().AddFlagSet(docs.Flags())

	root.AddCommand(docs, logoutCmd(deps))
	if deps.Serve != nil {
		root.AddCommand(serveCmd(deps))
	}
	return root
}

func documentosCmd(deps Deps) *cobra.Command {
	var f documentosFlags
	cmd := &cobra.Command{
		Use:   "documentos",
		Short: "Lista la documentación del mes en curso, ordenada por urgencia",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocumentos(cmd.Context(), deps, f, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&f.email, "email", "", "email del usuario (si falta se usa la sesión guardada o se pregunta)")
	cmd.Flags().StringVar(&f.password, "password", "", "contraseña del usuario")
	cmd.Flags().BoolVar(&f.mantener, "mantener", false, "mantener la sesión iniciada (guarda las credenciales cifradas)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "salida JSON en lugar de tabla")
	cmd.Flags().StringVar(&f.pdfPath, "pdf", "", "además, guardar el reporte PDF en este archivo")
	return cmd
}

func runDocumentos(ctx context.Context, deps Deps, f documentosFlags, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	creds, restored, err := resolveCredentials(ctx, deps, f)
	if err != nil {
		return err
	}

	res, err := deps.Orchestrator.Run(ctx, creds)
	var failure *domain.AuthFailure
	if restored && errors.As(err, &failure) {
		// La sesión guardada ya no sirve: se descarta y se piden credenciales.
		deps.Logger.Warn().Err(err).Msg("la sesión guardada fue rechazada")
		if lerr := deps.AuthUC.Logout(ctx); lerr != nil {
			deps.Logger.Warn().Err(lerr).Msg("no se pudo borrar la sesión guardada")
		}
		if creds, err = promptCredentials(deps, f.mantener); err != nil {
			return err
		}
		res, err = deps.Orchestrator.Run(ctx, creds)
	}
	if err != nil {
		return err
	}

	if f.pdfPath != "" {
		if err := writeReport(ctx, deps, res, f.pdfPath); err != nil {
			return err
		}
	}

	if f.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.DocumentacionesResponse{
			Periodo: dto.PeriodoResponse{Mes: res.Query.Month, Anio: res.Query.Year, EntidadID: res.Query.EntityID},
			Items:   res.Records,
			Resumen: res.Summary,
		})
	}
	fmt.Fprintf(out, "Documentación requerida %02d/%d · entidad %d\n\n", res.Query.Month, res.Query.Year, res.Query.EntityID)
	return RenderTable(out, res.Records, res.Summary)
}

// resolveCredentials prioriza los flags, después la sesión guardada y por último la terminal.
func resolveCredentials(ctx context.Context, deps Deps, f documentosFlags) (entity.Credentials, bool, error) {
	if f.email != "" || f.password != "" {
		return entity.Credentials{Email: f.email, Password: f.password, KeepLoggedIn: f.mantener}, false, nil
	}
	if creds, err := deps.AuthUC.Restore(ctx); err == nil {
		deps.Logger.Info().Str("email", creds.Email).Msg("usando sesión guardada")
		return creds, true, nil
	}
	creds, err := promptCredentials(deps, f.mantener)
	return creds, false, err
}

func promptCredentials(deps Deps, keep bool) (entity.Credentials, error) {
	email, password, err := deps.Prompter.Credentials()
	if err != nil {
		return entity.Credentials{}, err
	}
	return entity.Credentials{Email: email, Password: password, KeepLoggedIn: keep}, nil
}

func writeReport(ctx context.Context, deps Deps, res *documentacion.Result, path string) error {
	b, err := deps.Reports.GenerateDocumentacionPDF(ctx, res.Report(deps.ReportTitle, time.Now()))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("cli: guardar reporte: %w", err)
	}
	deps.Logger.Info().Str("archivo", path).Msg("reporte PDF generado")
	return nil
}

func logoutCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión y borra las credenciales guardadas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.AuthUC.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada.")
			return nil
		},
	}
}

func serveCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia la API HTTP (login, documentaciones y reporte PDF)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			// Con sesión guardada la API arranca ya autenticada.
			if creds, err := deps.AuthUC.Restore(ctx); err == nil {
				if _, err := deps.AuthUC.Login(ctx, creds); err != nil {
					deps.Logger.Warn().Err(err).Msg("no se pudo restaurar la sesión guardada")
				} else {
					deps.Logger.Info().Str("email", creds.Email).Msg("sesión restaurada")
				}
			}
			return deps.Serve(ctx)
		},
	}
}
