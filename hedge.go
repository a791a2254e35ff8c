package hedge

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/aretw0/hedge/internal/generator"
	"github.com/aretw0/hedge/internal/solver"
	"github.com/aretw0/hedge/pkg/domain"
)

// Version is the library version, printed by the CLI.
const Version = "0.3.1"

// config collects the functional options shared by Generate and Solve.
type config struct {
	seed      int64
	seeded    bool
	generator string
	start     *domain.Point
	end       *domain.Point
	logger    *slog.Logger
}

// Option configures a Generate or Solve call.
type Option func(*config)

// WithSeed makes generation deterministic. Without it, every call draws a
// fresh time-based seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithGenerator selects the carving variant (domain.GeneratorIterative or
// domain.GeneratorRecursive). The default is iterative.
func WithGenerator(kind string) Option {
	return func(c *config) {
		c.generator = kind
	}
}

// WithEndpoints overrides the maze's designated start and end for a Solve
// call.
func WithEndpoints(start, end domain.Point) Option {
	return func(c *config) {
		c.start = &start
		c.end = &end
	}
}

// WithLogger attaches a structured logger for debug tracing. The engine
// itself never logs above debug level; errors are returned, not logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Generate carves a new perfect maze of the given dimensions.
// Width and height must be odd and at least domain.MinDimension; otherwise
// domain.ErrInvalidDimension is returned.
func Generate(width, height int, opts ...Option) (*domain.Maze, error) {
	c := newConfig(opts)

	gen, err := generator.New(c.generator)
	if err != nil {
		return nil, err
	}

	seed := c.seed
	if !c.seeded {
		seed = time.Now().UnixNano()
	}

	started := time.Now()
	m, err := gen.Generate(width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	c.logger.Debug("maze generated",
		"width", width, "height", height,
		"generator", orDefault(c.generator, domain.GeneratorIterative),
		"seed", seed,
		"took", time.Since(started))
	return m, nil
}

// Solve finds a path across the maze with the named algorithm (one of
// domain.SolverKinds). Endpoints default to the maze's own start and end;
// WithEndpoints overrides them. An empty path means no route exists; that
// is a normal result for every algorithm except the dead-end filler, which
// returns domain.ErrUnsupportedTopology on disconnected or cyclic grids.
func Solve(m *domain.Maze, algorithm string, opts ...Option) (domain.Path, error) {
	c := newConfig(opts)

	if err := m.Validate(); err != nil {
		return nil, err
	}

	s, err := solver.New(algorithm)
	if err != nil {
		return nil, err
	}

	start, end := m.Start, m.End
	if c.start != nil {
		start, end = *c.start, *c.end
	}

	started := time.Now()
	path, err := s.Solve(m.Grid, start, end)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("maze solved",
		"algorithm", orDefault(algorithm, domain.SolverBFS),
		"start", start, "end", end,
		"length", path.Len(),
		"took", time.Since(started))
	return path, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Service exposes the package-level API as methods, convenient for
// injection into adapters that want an interface seam (HTTP, tests).
// A seed of 0 means "random".
type Service struct {
	Logger *slog.Logger
}

func (s Service) options(extra ...Option) []Option {
	opts := extra
	if s.Logger != nil {
		opts = append(opts, WithLogger(s.Logger))
	}
	return opts
}

// Generate carves a maze with an explicit algorithm and seed.
func (s Service) Generate(width, height int, algorithm string, seed int64) (*domain.Maze, error) {
	opts := s.options(WithGenerator(algorithm))
	if seed != 0 {
		opts = append(opts, WithSeed(seed))
	}
	return Generate(width, height, opts...)
}

// Solve finds a path between explicit endpoints.
func (s Service) Solve(m *domain.Maze, algorithm string, start, end domain.Point) (domain.Path, error) {
	return Solve(m, algorithm, s.options(WithEndpoints(start, end))...)
}
