// Package generator carves perfect mazes (connected, acyclic) into a grid
// using randomized depth-first backtracking.
//
// Cells live on odd coordinates and walls occupy the even coordinates
// between them, so carving steps two cells at a time and knocks down the
// wall in the middle. Both variants produce a valid perfect maze; they only
// differ in where the backtrack frames live.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/aretw0/hedge/pkg/domain"
)

// Generator produces a carved maze for the given dimensions. The caller
// owns the *rand.Rand, which keeps repeated calls independent and allows
// deterministic seeding.
type Generator interface {
	Generate(width, height int, rng *rand.Rand) (*domain.Maze, error)
}

// New returns the generator registered under kind. An empty kind selects
// the iterative default.
func New(kind string) (Generator, error) {
	switch kind {
	case "", domain.GeneratorIterative:
		return Iterative{}, nil
	case domain.GeneratorRecursive:
		return Recursive{}, nil
	default:
		return nil, fmt.Errorf("%w: generator %q", domain.ErrUnknownAlgorithm, kind)
	}
}

// carveSteps are the 2-cell jumps between odd-aligned cells: right, down,
// left, up.
var carveSteps = [4][2]int{{2, 0}, {0, 2}, {-2, 0}, {0, -2}}

// startCell is the deterministic carve seed, one cell in from the border.
var startCell = domain.Point{X: 1, Y: 1}

// unvisited reports whether p is an in-bounds cell the carver has not
// reached yet. A cell is unvisited exactly while it is still walled.
func unvisited(g *domain.Grid, p domain.Point) bool {
	if !g.InBounds(p.X, p.Y) {
		return false
	}
	open, _ := g.IsOpen(p.X, p.Y)
	return !open
}

// unvisitedNeighbors collects the 2-step neighbors of p that are still
// walled.
func unvisitedNeighbors(g *domain.Grid, p domain.Point) []domain.Point {
	result := make([]domain.Point, 0, 4)
	for _, d := range carveSteps {
		next := p.Add(d[0], d[1])
		if unvisited(g, next) {
			result = append(result, next)
		}
	}
	return result
}

// openBetween knocks down the wall between two cells two units apart and
// opens the destination.
func openBetween(g *domain.Grid, from, to domain.Point) {
	_ = g.SetOpen((from.X+to.X)/2, (from.Y+to.Y)/2, true)
	_ = g.SetOpen(to.X, to.Y, true)
}

// finish wraps a carved grid into a Maze with the conventional corners:
// start one cell in from the top-left border, end one cell in from the
// bottom-right. Both land on odd coordinates, so carving has opened them.
func finish(g *domain.Grid) *domain.Maze {
	return &domain.Maze{
		Grid:  g,
		Start: startCell,
		End:   domain.Point{X: g.Width - 2, Y: g.Height - 2},
	}
}
