package solver

import (
	"fmt"

	"github.com/aretw0/hedge/pkg/domain"
)

// DeadEndFiller repeatedly walls off open cells that have at most one open
// neighbor (excluding the endpoints) until none remain; on a perfect maze
// the surviving corridor is exactly the unique start-end path.
//
// The shortcut is only sound on tree-shaped grids. Cyclic or disconnected
// input is rejected with ErrUnsupportedTopology instead of guessing.
type DeadEndFiller struct{}

// Solve returns the unique path of a perfect maze.
func (d DeadEndFiller) Solve(g *domain.Grid, start, end domain.Point) (domain.Path, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return nil, err
	}
	if start == end {
		return domain.Path{start}, nil
	}

	if err := d.checkTopology(g, start, end); err != nil {
		return nil, err
	}

	scratch := g.Clone()
	d.fill(scratch, start, end)

	return d.walk(scratch, start, end), nil
}

// checkTopology floods the component containing start and verifies it is a
// tree that also contains end.
func (d DeadEndFiller) checkTopology(g *domain.Grid, start, end domain.Point) error {
	component := map[domain.Point]bool{start: true}
	queue := []domain.Point{start}
	edges := 0

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range openNeighbors(g, p) {
			edges++ // counted from both sides; halved below
			if !component[n] {
				component[n] = true
				queue = append(queue, n)
			}
		}
	}

	if !component[end] {
		return fmt.Errorf("%w: endpoints are disconnected", domain.ErrUnsupportedTopology)
	}
	if edges/2 != len(component)-1 {
		return fmt.Errorf("%w: grid contains a cycle", domain.ErrUnsupportedTopology)
	}
	return nil
}

// fill walls off dead ends until a full pass changes nothing.
func (d DeadEndFiller) fill(g *domain.Grid, start, end domain.Point) {
	for changed := true; changed; {
		changed = false
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				p := domain.Point{X: x, Y: y}
				if p == start || p == end {
					continue
				}
				if open, _ := g.IsOpen(x, y); !open {
					continue
				}
				if len(openNeighbors(g, p)) <= 1 {
					_ = g.SetOpen(x, y, false)
					changed = true
				}
			}
		}
	}
}

// walk follows the surviving corridor from start to end. After filling, every
// remaining cell except the endpoints has exactly two open neighbors, so
// the walk never branches.
func (d DeadEndFiller) walk(g *domain.Grid, start, end domain.Point) domain.Path {
	path := domain.Path{start}
	prev := domain.Point{X: -1, Y: -1}
	current := start

	for current != end {
		for _, n := range openNeighbors(g, current) {
			if n != prev {
				prev, current = current, n
				break
			}
		}
		path = append(path, current)
	}
	return path
}
