package solver

import "github.com/aretw0/hedge/pkg/domain"

// BFS explores in increasing step count with a FIFO frontier, so the first
// time it dequeues the end cell the path has the minimum number of steps.
type BFS struct{}

// Solve returns a shortest path, or an empty path if none exists.
func (BFS) Solve(g *domain.Grid, start, end domain.Point) (domain.Path, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return nil, err
	}
	if start == end {
		return domain.Path{start}, nil
	}

	prev := map[domain.Point]domain.Point{}
	visited := map[domain.Point]bool{start: true}
	queue := []domain.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			return reconstruct(prev, start, end), nil
		}

		for _, n := range openNeighbors(g, current) {
			if visited[n] {
				continue
			}
			visited[n] = true
			prev[n] = current
			queue = append(queue, n)
		}
	}

	return domain.Path{}, nil
}
