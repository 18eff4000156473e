package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ziadkadry99/foodee/internal/db"
	"github.com/ziadkadry99/foodee/internal/dom"
	"github.com/ziadkadry99/foodee/internal/renderlog"
	"github.com/ziadkadry99/foodee/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string   // directory holding the site assets
	Static   []string // doublestar globs of assets that may be served
	AllowAll bool     // allow all CORS origins (dev mode)
}

// Shell hands out fresh page shells.
type Shell interface {
	Page() (*dom.Page, error)
}

// Runner renders content onto a page.
type Runner interface {
	Run(ctx context.Context, page *dom.Page) site.Outcome
}

// Server serves the rendered site.
type Server struct {
	cfg        Config
	shell      Shell
	runner     Runner
	db         *db.DB
	gatherer   prometheus.Gatherer
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithDatabase exposes the render log kept in database.
func WithDatabase(database *db.DB) Option {
	return func(s *Server) { s.db = database }
}

// WithGatherer serves the metrics collected by g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a server rendering shell pages through runner.
func New(cfg Config, shell Shell, runner Runner, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		shell:  shell,
		runner: runner,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	if s.db != nil {
		renderlog.RegisterRoutes(r, renderlog.NewStore(s.db))
	}

	r.Get("/", s.handlePage)
	r.Get("/index.html", s.handlePage)
	r.Method(http.MethodGet, "/*", s.staticHandler())
	r.Method(http.MethodHead, "/*", s.staticHandler())

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.logger.Info("foodee server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
