// Package http exposes the maze engine over a small JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/hedge/internal/observability"
	"github.com/aretw0/hedge/pkg/domain"
	"github.com/aretw0/hedge/pkg/ports"
)

// Engine defines the interface for the hedge maze core.
type Engine interface {
	Generate(width, height int, algorithm string, seed int64) (*domain.Maze, error)
	Solve(m *domain.Maze, algorithm string, start, end domain.Point) (domain.Path, error)
}

// Server wires the engine and a maze store behind the router.
type Server struct {
	engine  Engine
	store   ports.MazeStore
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewHandler creates the HTTP handler. The registry backs /metrics; pass a
// fresh prometheus.NewRegistry() unless you share one across components.
func NewHandler(engine Engine, store ports.MazeStore, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	s := &Server{
		engine:  engine,
		store:   store,
		metrics: observability.NewMetrics(reg),
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/mazes", func(r chi.Router) {
		r.Post("/", s.createMaze)
		r.Get("/{id}", s.getMaze)
		r.Post("/{id}/solve", s.solveMaze)
	})

	return r
}

type createMazeRequest struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Algorithm string `json:"algorithm,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
}

type mazeResponse struct {
	ID   string       `json:"id"`
	Maze *domain.Maze `json:"maze"`
}

type solveRequest struct {
	Algorithm string        `json:"algorithm,omitempty"`
	Start     *domain.Point `json:"start,omitempty"`
	End       *domain.Point `json:"end,omitempty"`
}

type solveResponse struct {
	Algorithm string      `json:"algorithm"`
	Found     bool        `json:"found"`
	Length    int         `json:"length"`
	Path      domain.Path `json:"path"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// createMaze handles POST /mazes.
func (s *Server) createMaze(w http.ResponseWriter, r *http.Request) {
	var body createMazeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	algorithm := body.Algorithm
	if algorithm == "" {
		algorithm = domain.GeneratorIterative
	}

	started := time.Now()
	m, err := s.engine.Generate(body.Width, body.Height, algorithm, body.Seed)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.metrics.GenerateTime.Observe(time.Since(started).Seconds())
	s.metrics.MazesGenerated.WithLabelValues(algorithm).Inc()

	id := uuid.NewString()
	if err := s.store.Save(r.Context(), id, m); err != nil {
		s.logger.Error("failed to save maze", "err", err, "id", id)
		http.Error(w, "Failed to persist maze", http.StatusInternalServerError)
		return
	}

	s.logger.Info("maze created", "id", id, "width", body.Width, "height", body.Height)
	s.writeJSON(w, http.StatusCreated, mazeResponse{ID: id, Maze: m})
}

// getMaze handles GET /mazes/{id}.
func (s *Server) getMaze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := s.store.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, mazeResponse{ID: id, Maze: m})
}

// solveMaze handles POST /mazes/{id}/solve.
func (s *Server) solveMaze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := s.store.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var body solveRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	algorithm := body.Algorithm
	if algorithm == "" {
		algorithm = domain.SolverBFS
	}
	start, end := m.Start, m.End
	if body.Start != nil {
		start = *body.Start
	}
	if body.End != nil {
		end = *body.End
	}

	started := time.Now()
	path, err := s.engine.Solve(m, algorithm, start, end)
	if err != nil {
		s.metrics.Solves.WithLabelValues(algorithm, "error").Inc()
		s.writeError(w, err)
		return
	}
	s.metrics.SolveTime.WithLabelValues(algorithm).Observe(time.Since(started).Seconds())

	outcome := "found"
	if path.IsEmpty() {
		outcome = "empty"
	}
	s.metrics.Solves.WithLabelValues(algorithm, outcome).Inc()

	s.writeJSON(w, http.StatusOK, solveResponse{
		Algorithm: algorithm,
		Found:     !path.IsEmpty(),
		Length:    path.Len(),
		Path:      path,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode error", "err", err)
	}
}

// writeError maps domain errors onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrMazeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDimension),
		errors.Is(err, domain.ErrUnknownAlgorithm):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidEndpoint),
		errors.Is(err, domain.ErrUnsupportedTopology):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	http.Error(w, fmt.Sprintf("%v", err), status)
}
