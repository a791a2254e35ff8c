/*
Package hedge generates rectangular grid mazes and solves them with a suite
of interchangeable pathfinding algorithms.

Generation uses randomized depth-first carving over an odd-aligned grid
(cells on odd coordinates, walls between them), producing a perfect maze:
every open cell is reachable from every other through exactly one simple
path. The default iterative variant keeps its backtrack frames on an
explicit stack, so grid size is bounded by memory rather than call depth.

Solving offers four strategies behind one contract: breadth-first search,
A* with a Manhattan heuristic, Dijkstra, and a dead-end filler that prunes
the maze down to its unique corridor. The first three guarantee a
minimum-step path and treat "no route" as a normal empty result; the
dead-end filler requires a perfect maze and rejects anything else.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/hedge"
		"github.com/aretw0/hedge/pkg/domain"
	)

	func main() {
		maze, err := hedge.Generate(21, 11, hedge.WithSeed(42))
		if err != nil {
			log.Fatal(err)
		}

		path, err := hedge.Solve(maze, domain.SolverAStar)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("solved in %d steps\n", path.Steps())
	}

The core is entirely synchronous and owns no shared state: every call works
on its own grid and search frontier, so concurrent calls on independent
mazes need no coordination. Rendering, export, the interactive session and
the HTTP adapter live in cmd/hedge and internal/; the engine itself exposes
only in-memory values.
*/
package hedge
