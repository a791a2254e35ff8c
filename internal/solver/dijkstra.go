package solver

import "github.com/aretw0/hedge/pkg/domain"

// Dijkstra orders its frontier by cumulative cost alone. With unit edges
// it degenerates to BFS semantics; it is included for the structural
// comparison against the heuristic frontier of A*.
type Dijkstra struct{}

// Solve returns a shortest path, or an empty path if none exists.
func (Dijkstra) Solve(g *domain.Grid, start, end domain.Point) (domain.Path, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return nil, err
	}
	if start == end {
		return domain.Path{start}, nil
	}

	prev := map[domain.Point]domain.Point{}
	dist := map[domain.Point]int{start: 0}
	done := map[domain.Point]bool{}

	open := &frontier{}
	open.push(start, 0, 0)

	for open.Len() > 0 {
		current := open.pop()
		if done[current.point] {
			continue
		}
		done[current.point] = true

		if current.point == end {
			return reconstruct(prev, start, end), nil
		}

		for _, n := range openNeighbors(g, current.point) {
			if done[n] {
				continue
			}
			tentative := current.cost + 1
			if best, seen := dist[n]; seen && tentative >= best {
				continue
			}
			dist[n] = tentative
			prev[n] = current.point
			open.push(n, tentative, tentative)
		}
	}

	return domain.Path{}, nil
}
