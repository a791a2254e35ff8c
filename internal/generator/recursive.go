package generator

import (
	"math/rand"

	"github.com/aretw0/hedge/pkg/domain"
)

// Recursive carves on the native call stack. It mirrors Iterative's
// observable behavior but is bounded by call depth, so it is offered for
// parity rather than as the default.
type Recursive struct{}

// Generate carves a perfect maze into a fresh grid.
func (r Recursive) Generate(width, height int, rng *rand.Rand) (*domain.Maze, error) {
	g, err := domain.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	_ = g.SetOpen(startCell.X, startCell.Y, true)
	r.carveFrom(g, startCell, rng)

	return finish(g), nil
}

func (r Recursive) carveFrom(g *domain.Grid, p domain.Point, rng *rand.Rand) {
	for _, i := range rng.Perm(len(carveSteps)) {
		next := p.Add(carveSteps[i][0], carveSteps[i][1])
		// Re-check on every pass: an earlier branch may have reached it.
		if !unvisited(g, next) {
			continue
		}
		openBetween(g, p, next)
		r.carveFrom(g, next, rng)
	}
}
