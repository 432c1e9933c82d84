package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/errors"
	"github.com/matzehuels/gatexray/pkg/io"
	"github.com/matzehuels/gatexray/pkg/observability"
	"github.com/matzehuels/gatexray/pkg/pipeline"
	"github.com/matzehuels/gatexray/pkg/view"
)

// contentTypes maps output formats to response types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:   "image/svg+xml",
	pipeline.FormatPNG:   "image/png",
	pipeline.FormatPDF:   "application/pdf",
	pipeline.FormatJSON:  "application/json",
	pipeline.FormatDOT:   "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatGraph: "image/svg+xml",
}

type createdBody struct {
	ID string `json:"id"`
}

type catalogBody struct {
	Gates []circuit.GateType `json:"gates"`
}

type operatorsBody struct {
	Operators []circuit.Operator `json:"operators"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	op, err := io.ReadOperator(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.render(w, r, op)
}

func (s *Server) handleRenderStored(w http.ResponseWriter, r *http.Request) {
	op, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.render(w, r, op)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, op circuit.Operator) {
	opts, format, err := s.renderOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), op, s.catalog, opts)
	if err != nil {
		s.logger.Error("render failed", "operator", op.Title, "id", RequestIDFrom(r.Context()), "err", err)
		writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", contentTypes[format])
	h.Set("X-Mode", res.Frame.Mode.String())
	h.Set("X-Overlap", strconv.FormatBool(res.Frame.Overlap()))
	if res.CacheInfo.RenderHit {
		h.Set("X-Cache", "hit")
	} else {
		h.Set("X-Cache", "miss")
	}
	h.Set("ETag", strconv.Quote(res.OperatorHash))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// renderOptions reads query parameters over the server defaults.
func (s *Server) renderOptions(r *http.Request) (pipeline.Options, string, error) {
	q := r.URL.Query()
	opts := s.defaults
	opts.Logger = nil

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, "", err
	}
	opts.Formats = []string{format}

	if v := q.Get("mode"); v != "" {
		m, err := view.ParseMode(v)
		if err != nil {
			return opts, "", err
		}
		opts.Mode = m
	}
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "seed %q", v)
		}
		opts.Seed = seed
	}
	if v := q.Get("cell"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "cell %q", v)
		}
		opts.Metrics.CellSize = f
	}
	if v := q.Get("margin"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "margin %q", v)
		}
		opts.Metrics.MarginX, opts.Metrics.MarginY = f, f
	}
	if v := q.Get("refresh"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "refresh %q", v)
		}
		opts.Refresh = b
	}
	opts.Title = q.Has("title")
	return opts, format, nil
}

func (s *Server) handleCreateOperator(w http.ResponseWriter, r *http.Request) {
	op, err := io.ReadOperator(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := s.store.Put(r.Context(), op)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/operators/"+id)
	writeJSON(w, http.StatusCreated, createdBody{ID: id})
}

func (s *Server) handleListOperators(w http.ResponseWriter, r *http.Request) {
	ops, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if ops == nil {
		ops = []circuit.Operator{}
	}
	writeJSON(w, http.StatusOK, operatorsBody{Operators: ops})
}

func (s *Server) handleGetOperator(w http.ResponseWriter, r *http.Request) {
	op, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

func (s *Server) handleDeleteOperator(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogBody{Gates: s.catalog.Entries()})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var snap observability.Snapshot
	if s.stats != nil {
		snap = s.stats.Snapshot()
	}
	writeJSON(w, http.StatusOK, snap)
}
