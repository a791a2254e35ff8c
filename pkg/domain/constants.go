package domain

// Generator algorithm names, selected by the orchestration layer at call
// time.
const (
	// GeneratorIterative carves with an explicit heap-allocated stack and
	// handles large grids. It is the default.
	GeneratorIterative = "iterative"
	// GeneratorRecursive carves on the call stack. Kept for parity; only
	// suitable for small grids.
	GeneratorRecursive = "recursive"
)

// Solver algorithm names.
const (
	SolverBFS      = "bfs"
	SolverAStar    = "astar"
	SolverDijkstra = "dijkstra"
	SolverDeadEnd  = "deadend"
)

// GeneratorKinds lists the registered generator algorithms.
func GeneratorKinds() []string {
	return []string{GeneratorIterative, GeneratorRecursive}
}

// SolverKinds lists the registered solver algorithms.
func SolverKinds() []string {
	return []string{SolverBFS, SolverAStar, SolverDijkstra, SolverDeadEnd}
}
