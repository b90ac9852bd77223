// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/bissquit/incident-console/internal/assistant"
	"github.com/bissquit/incident-console/internal/config"
	"github.com/bissquit/incident-console/internal/github"
	"github.com/bissquit/incident-console/internal/incidents"
	"github.com/bissquit/incident-console/internal/jira"
	"github.com/bissquit/incident-console/internal/logstore"
	"github.com/bissquit/incident-console/internal/mcp"
	"github.com/bissquit/incident-console/internal/openshift"
	"github.com/bissquit/incident-console/internal/pkg/httputil"
	"github.com/bissquit/incident-console/internal/reports"
	"github.com/bissquit/incident-console/internal/version"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App represents the application instance.
type App struct {
	config        *config.Config
	logger        *slog.Logger
	server        *http.Server
	metricsServer *http.Server
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	logger := initLogger(cfg.Log)

	app := &App{
		config: cfg,
		logger: logger,
	}

	app.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           app.setupRouter(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Metrics server on separate port
	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	app.metricsServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MetricsPort),
		Handler:           metricsRouter,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return app, nil
}

// Run starts the HTTP servers.
func (a *App) Run() error {
	go func() {
		a.logger.Info("starting metrics server",
			"host", a.config.Server.Host,
			"port", a.config.Server.MetricsPort,
		)
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("metrics server error", "error", err)
		}
	}()

	a.logger.Info("starting server",
		"host", a.config.Server.Host,
		"port", a.config.Server.Port,
	)

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down servers")

	// Shutdown both servers in parallel
	var wg sync.WaitGroup
	var errs []error
	var mu sync.Mutex

	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := a.server.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
			mu.Unlock()
		}
	}()

	go func() {
		defer wg.Done()
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
			mu.Unlock()
		}
	}()

	wg.Wait()

	return errors.Join(errs...)
}

// Router returns the HTTP handler for testing.
func (a *App) Router() http.Handler {
	return a.server.Handler
}

func (a *App) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Metrics middleware must be first to measure full request time
	r.Use(httputil.MetricsMiddleware)

	// CORS must be early to handle preflight requests before other middleware
	r.Use(httputil.CORSMiddleware(a.config.CORS.AllowedOrigins))
	r.Use(middleware.RequestID)
	r.Use(httputil.RequestLoggerMiddleware(a.logger))
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", a.healthzHandler)
	r.Get("/readyz", a.readyzHandler)
	r.Get("/version", a.versionHandler)

	incidentsService := incidents.NewService(incidents.Fixtures())
	incidentsHandler := incidents.NewHandler(incidentsService)

	var jiraService *jira.Service
	if a.config.Jira.BaseURL != "" {
		jiraService = jira.NewService(jira.NewClient(a.config.Jira), a.config.Jira.ProjectKey, a.logger)
	} else {
		a.logger.Info("jira instance not configured, serving fixture issues")
		jiraService = jira.NewService(nil, a.config.Jira.ProjectKey, a.logger)
	}
	jiraHandler := jira.NewHandler(jiraService)

	githubClient := github.NewClient(a.config.GitHub)
	if !githubClient.Configured() {
		a.logger.Warn("github repository not configured, searches will fail")
	}
	githubHandler := github.NewHandler(githubClient)

	var openshiftService *openshift.Service
	if a.config.OpenShift.URL != "" {
		openshiftService = openshift.NewService(openshift.NewClient(a.config.OpenShift), a.config.OpenShift.Namespace, a.logger)
	} else {
		a.logger.Info("cluster not configured, serving fixture resources")
		openshiftService = openshift.NewService(nil, a.config.OpenShift.Namespace, a.logger)
	}
	openshiftHandler := openshift.NewHandler(openshiftService)

	mcpHandler := mcp.NewHandler()
	reportsHandler := reports.NewHandler()

	splunkClient := logstore.NewSplunkClient(a.config.Splunk, a.logger)
	kibanaClient := logstore.NewKibanaClient(a.config.Kibana, a.logger)
	logstoreHandler := logstore.NewHandler(splunkClient, kibanaClient)

	dispatcher := assistant.NewDispatcher(jiraService, githubClient, openshiftService, a.logger)
	assistantHandler := assistant.NewHandler(dispatcher)

	r.Route("/api", func(r chi.Router) {
		incidentsHandler.RegisterRoutes(r)
		jiraHandler.RegisterRoutes(r)
		githubHandler.RegisterRoutes(r)
		openshiftHandler.RegisterRoutes(r)
		mcpHandler.RegisterRoutes(r)
		reportsHandler.RegisterRoutes(r)
		logstoreHandler.RegisterRoutes(r)
		assistantHandler.RegisterRoutes(r)
	})

	return r
}

func (a *App) healthzHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) readyzHandler(w http.ResponseWriter, _ *http.Request) {
	// No backing store: the console is ready as soon as it serves.
	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) versionHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"version":    version.Version,
		"commit":     version.GitCommit,
		"build_date": version.BuildDate,
	})
}

func initLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
