package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gatexray/pkg/buildinfo"
	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/observability"
	"github.com/matzehuels/gatexray/pkg/pipeline"
	"github.com/matzehuels/gatexray/pkg/store"
)

// maxBodyBytes caps request bodies. Operators are small.
const maxBodyBytes = 1 << 20

// Config wires a Server.
type Config struct {
	Runner  *pipeline.Runner
	Store   store.Store
	Catalog *circuit.Catalog
	Logger  *log.Logger
	// Stats backs GET /v1/stats. nil serves an empty snapshot.
	Stats *observability.Counters
	// Defaults seeds render options before query parameters apply.
	Defaults pipeline.Options
}

// Server handles API requests.
type Server struct {
	runner   *pipeline.Runner
	store    store.Store
	catalog  *circuit.Catalog
	logger   *log.Logger
	stats    *observability.Counters
	defaults pipeline.Options
}

// New creates a Server. Missing pieces get defaults: a cache-less runner,
// an in-memory store, the builtin catalog and log.Default().
func New(cfg Config) *Server {
	s := &Server{
		runner:   cfg.Runner,
		store:    cfg.Store,
		catalog:  cfg.Catalog,
		logger:   cfg.Logger,
		stats:    cfg.Stats,
		defaults: cfg.Defaults,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	if s.store == nil {
		s.store = store.NewMemory()
	}
	if s.catalog == nil {
		s.catalog = circuit.Builtin()
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound(r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorStatus(w, r, http.StatusMethodNotAllowed, errMethod(r.Method))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Status string `json:"status"`
			buildinfo.Info
		}{"ok", buildinfo.Get()})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/catalog", s.handleCatalog)
		r.Get("/stats", s.handleStats)

		r.Route("/operators", func(r chi.Router) {
			r.Get("/", s.handleListOperators)
			r.Post("/", s.handleCreateOperator)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetOperator)
				r.Delete("/", s.handleDeleteOperator)
				r.Get("/render", s.handleRenderStored)
			})
		})
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}
