/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"math"
	"net"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/db"
	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
	"github.com/budistudiobank-hash/tanggap-cinta-anak/routes"
	"github.com/budistudiobank-hash/tanggap-cinta-anak/static"
	"github.com/budistudiobank-hash/tanggap-cinta-anak/templates"
)

const (
	runtimeEnvVar   = "TANGGAP_ENV"
	shutdownTimeout = 10 * time.Second
)

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "port",
			Value: "8080",
			Usage: "the web server port",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string; history is kept in memory when unset",
		},
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars("CSRF_SECRET"),
			Usage:   "secret used to sign CSRF tokens (required in production)",
		},
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (for templates)",
		},
	},
	Action: start,
}

type runtimeMode int

const (
	runtimeDevelopment runtimeMode = iota
	runtimeProduction
)

// runtimeModeFromEnv reads TANGGAP_ENV. Unset means production.
func runtimeModeFromEnv() (runtimeMode, error) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(runtimeEnvVar))) {
	case "", "production", "prod":
		return runtimeProduction, nil
	case "development", "dev":
		return runtimeDevelopment, nil
	default:
		return runtimeProduction, errInvalidRuntimeEnv
	}
}

func start(ctx context.Context, cmd *cli.Command) error {
	mode, err := runtimeModeFromEnv()
	if err != nil {
		return err
	}

	if cmd.Bool("dev") {
		mode = runtimeDevelopment
	}

	csrfSecret := cmd.String("csrf-secret")
	if csrfSecret == "" && mode == runtimeProduction {
		return errCSRFSecretRequired
	}

	store, closeStore, err := openHistoryStore(ctx, cmd.String("database-url"))
	if err != nil {
		return err
	}
	defer closeStore()

	f, err := newWebApp(webOptions{
		CSRFSecret: csrfSecret,
		Store:      store,
		Dev:        mode == runtimeDevelopment,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cmd.String("port")),
		Handler:           f,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return serve(ctx, srv)
}

// openHistoryStore connects to Postgres when a URL is given, otherwise it
// falls back to an in-memory store.
func openHistoryStore(ctx context.Context, databaseURL string) (growth.HistoryStore, func(), error) {
	if databaseURL == "" {
		appLogger.Warn("No database configured, growth history is kept in memory")
		return growth.NewMemoryStore(), func() {}, nil
	}

	appLogger.Info("Connecting to database")
	if err := db.Init(ctx, databaseURL); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	appLogger.Info("Syncing database schema")
	if err := db.SyncSchema(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to sync schema: %w", err)
	}

	return db.GrowthRecordStore{}, db.Close, nil
}

// serve runs srv until ctx is cancelled or a termination signal arrives.
func serve(ctx context.Context, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting web server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web server failed: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down web server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down web server: %w", err)
		}

		return nil
	})

	return g.Wait()
}

type webOptions struct {
	CSRFSecret string
	Store      growth.HistoryStore
	Dev        bool
}

func newWebApp(opts webOptions) (*flamego.Flame, error) {
	f := flamego.New()
	f.Use(routes.RequestLogger)
	f.Use(flamego.Recovery())
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f.Use(session.Sessioner(session.Options{
		Cookie: session.CookieOptions{
			Name:     "tanggap_session",
			HTTPOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   !opts.Dev,
		},
	}))
	f.Use(csrf.Csrfer(csrf.Options{
		Secret: opts.CSRFSecret,
	}))
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
		FuncMaps:   []htmltemplate.FuncMap{templateFuncs()},
	}))
	f.Use(routes.NoCacheHeaders())
	f.Use(routes.FlashInjector())
	f.Use(routes.CSRFInjector())
	f.Use(routes.HistoryStorer(opts.Store))

	configureEmptyNotFoundHandler(f)
	registerRoutes(f)

	return f, nil
}

func registerRoutes(f *flamego.Flame) {
	f.Get("/", routes.Home)

	f.Get("/child", routes.ChildForm)
	f.Post("/child", csrf.Validate, routes.AssessChild)

	f.Get("/ideal-weight", routes.IdealWeightForm)
	f.Post("/ideal-weight", csrf.Validate, routes.CalculateIdealWeight)

	f.Get("/pregnancy", routes.PregnancyForm)
	f.Post("/pregnancy", csrf.Validate, routes.AssessPregnancy)
	f.Get("/pregnancy/{id}", routes.ViewPregnancyAssessment)

	f.Get("/history", routes.ListHistory)
	f.Post("/history/clear", csrf.Validate, routes.ClearHistory)
	f.Get("/history/{id}", routes.ViewHistoryRecord)
	f.Post("/history/{id}/delete", csrf.Validate, routes.DeleteHistoryRecord)

	f.Get("/nutrition", routes.NutritionIndex)
	f.Get("/nutrition/{group}", routes.NutritionGroup)

	f.Group("/api", func() {
		f.Post("/child-scores", routes.APIChildScores)
		f.Get("/ideal-weight", routes.APIIdealWeight)
		f.Get("/weight-status", routes.APIWeightStatus)
		f.Post("/pregnancy-risk", routes.APIPregnancyRisk)
	})
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

func templateFuncs() htmltemplate.FuncMap {
	return htmltemplate.FuncMap{
		"zscore":    formatZScore,
		"kg":        formatOneDecimal,
		"riskClass": riskClass,
		"date":      formatDate,
		"qrImage":   qrImageURL,
	}
}

func formatZScore(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}

	return fmt.Sprintf("%+.2f", v)
}

func formatOneDecimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func riskClass(level any) string {
	value := strings.TrimSpace(fmt.Sprint(level))
	if value == "" {
		return ""
	}

	return "risk-" + value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format("2 Jan 2006")
}

// qrImageURL wraps base64 PNG data as a data URL. Anything that is not
// plain base64 is dropped.
func qrImageURL(encoded string) htmltemplate.URL {
	if !base64Pattern.MatchString(encoded) {
		return ""
	}

	return htmltemplate.URL("data:image/png;base64," + encoded) //nolint:gosec // validated base64 payload
}
