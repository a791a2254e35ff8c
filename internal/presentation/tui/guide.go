package tui

import "github.com/charmbracelet/glamour"

const guideMarkdown = `# hedge algorithm guide

## Generation

Both generators carve a **perfect maze**: every open cell reachable from
every other through exactly one simple path.

- **iterative** (default) — randomized depth-first carving with an explicit
  backtrack stack. Handles grids hundreds of cells per side.
- **recursive** — the same carve on the call stack. Kept for parity; use it
  only on small grids.

## Solving

- **bfs** — FIFO frontier, explores by step count. Always a shortest path.
- **astar** — frontier ordered by cost-so-far plus Manhattan distance to the
  end. Same path length as bfs, usually far fewer cells explored.
- **dijkstra** — frontier ordered by cumulative cost alone. On a unit grid
  it matches bfs; included for the structural comparison with astar.
- **deadend** — walls off dead-end cells until only the solution corridor
  survives. Only valid on perfect mazes; cyclic or disconnected grids are
  rejected.

A maze with no route between the endpoints yields an *empty* path from
bfs, astar and dijkstra — that is a result, not an error.
`

// RenderGuide renders the algorithm guide markdown for the terminal.
func RenderGuide() (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return "", err
	}
	return r.Render(guideMarkdown)
}
