package generator

import (
	"math/rand"

	"github.com/aretw0/hedge/pkg/domain"
)

// Iterative carves with an explicit frame stack, so the only depth bound is
// heap memory. This is the default variant and the one expected to handle
// grids hundreds of cells per side.
type Iterative struct{}

// Generate carves a perfect maze into a fresh grid.
func (Iterative) Generate(width, height int, rng *rand.Rand) (*domain.Maze, error) {
	g, err := domain.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	_ = g.SetOpen(startCell.X, startCell.Y, true)

	stack := make([]domain.Point, 0, (width/2+1)*(height/2+1))
	stack = append(stack, startCell)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates := unvisitedNeighbors(g, current)
		if len(candidates) == 0 {
			// Dead end: backtrack to the most recent cell that may still
			// have unvisited neighbors.
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		openBetween(g, current, next)
		stack = append(stack, next)
	}

	return finish(g), nil
}
