// Package solver finds paths between two open cells of a grid.
//
// Four interchangeable strategies share one contract: the grid is
// read-only, endpoints must be open in-bounds cells, and "no route" is an
// empty path rather than an error. BFS, A* and Dijkstra all return a path
// of minimal step count; the dead-end filler trades optimality guarantees
// on general grids for a structural shortcut that only works on perfect
// mazes.
package solver

import (
	"fmt"

	"github.com/aretw0/hedge/pkg/domain"
)

// Solver computes a path across g from start to end. Implementations must
// not mutate g.
type Solver interface {
	Solve(g *domain.Grid, start, end domain.Point) (domain.Path, error)
}

// New returns the solver registered under kind. An empty kind selects BFS.
func New(kind string) (Solver, error) {
	switch kind {
	case "", domain.SolverBFS:
		return BFS{}, nil
	case domain.SolverAStar:
		return AStar{}, nil
	case domain.SolverDijkstra:
		return Dijkstra{}, nil
	case domain.SolverDeadEnd:
		return DeadEndFiller{}, nil
	default:
		return nil, fmt.Errorf("%w: solver %q", domain.ErrUnknownAlgorithm, kind)
	}
}

// checkEndpoints validates that both endpoints are open in-bounds cells.
func checkEndpoints(g *domain.Grid, start, end domain.Point) error {
	for _, ep := range []struct {
		label string
		p     domain.Point
	}{{"start", start}, {"end", end}} {
		open, err := g.IsOpen(ep.p.X, ep.p.Y)
		if err != nil {
			return fmt.Errorf("%w: %s (%d,%d) outside grid", domain.ErrInvalidEndpoint, ep.label, ep.p.X, ep.p.Y)
		}
		if !open {
			return fmt.Errorf("%w: %s (%d,%d) is a wall", domain.ErrInvalidEndpoint, ep.label, ep.p.X, ep.p.Y)
		}
	}
	return nil
}

// reconstruct walks predecessor links from end back to start and reverses.
func reconstruct(prev map[domain.Point]domain.Point, start, end domain.Point) domain.Path {
	path := domain.Path{end}
	for cur := end; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// openNeighbors returns the orthogonally adjacent open cells of p.
func openNeighbors(g *domain.Grid, p domain.Point) []domain.Point {
	all := g.Neighbors4(p.X, p.Y)
	result := all[:0]
	for _, n := range all {
		if open, _ := g.IsOpen(n.X, n.Y); open {
			result = append(result, n)
		}
	}
	return result
}
