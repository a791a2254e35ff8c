package hedge_test

import (
	"errors"
	"testing"

	"github.com/aretw0/hedge"
	"github.com/aretw0/hedge/pkg/domain"
)

func TestGenerateThenSolve_Scenario(t *testing.T) {
	maze, err := hedge.Generate(21, 11, hedge.WithGenerator(domain.GeneratorIterative), hedge.WithSeed(1234))
	if err != nil {
		t.Fatal(err)
	}

	if maze.Start != (domain.Point{X: 1, Y: 1}) {
		t.Errorf("start = %v, want (1,1)", maze.Start)
	}
	if maze.End != (domain.Point{X: 19, Y: 9}) {
		t.Errorf("end = %v, want (19,9)", maze.End)
	}

	bfs, err := hedge.Solve(maze, domain.SolverBFS)
	if err != nil {
		t.Fatal(err)
	}
	if bfs.IsEmpty() {
		t.Fatal("bfs returned an empty path on a generated maze")
	}

	astar, err := hedge.Solve(maze, domain.SolverAStar)
	if err != nil {
		t.Fatal(err)
	}
	if astar.Len() != bfs.Len() {
		t.Errorf("astar length = %d, bfs length = %d, want equal", astar.Len(), bfs.Len())
	}
}

func TestGenerate_InvalidDimension(t *testing.T) {
	if _, err := hedge.Generate(0, 0); !errors.Is(err, domain.ErrInvalidDimension) {
		t.Errorf("Generate(0,0) error = %v, want ErrInvalidDimension", err)
	}
}

func TestGenerate_UnknownGenerator(t *testing.T) {
	if _, err := hedge.Generate(11, 11, hedge.WithGenerator("prim")); !errors.Is(err, domain.ErrUnknownAlgorithm) {
		t.Errorf("error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestSolve_WallEndpoint(t *testing.T) {
	maze, err := hedge.Generate(11, 11, hedge.WithSeed(2))
	if err != nil {
		t.Fatal(err)
	}

	// (0,0) is border wall by the grid invariant.
	_, err = hedge.Solve(maze, domain.SolverBFS,
		hedge.WithEndpoints(domain.Point{X: 0, Y: 0}, maze.End))
	if !errors.Is(err, domain.ErrInvalidEndpoint) {
		t.Errorf("error = %v, want ErrInvalidEndpoint", err)
	}
}

func TestSolve_UnknownAlgorithm(t *testing.T) {
	maze, err := hedge.Generate(11, 11, hedge.WithSeed(2))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := hedge.Solve(maze, "dfs"); !errors.Is(err, domain.ErrUnknownAlgorithm) {
		t.Errorf("error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestSolve_StartEqualsEnd(t *testing.T) {
	maze, err := hedge.Generate(5, 5, hedge.WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}

	for _, kind := range domain.SolverKinds() {
		path, err := hedge.Solve(maze, kind, hedge.WithEndpoints(maze.Start, maze.Start))
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if path.Len() != 1 || path[0] != maze.Start {
			t.Errorf("%s: path = %v, want [%v]", kind, path, maze.Start)
		}
	}
}

func TestService_SeedZeroMeansRandom(t *testing.T) {
	svc := hedge.Service{}
	m, err := svc.Generate(11, 11, domain.GeneratorIterative, 0)
	if err != nil {
		t.Fatal(err)
	}
	path, err := svc.Solve(m, domain.SolverDijkstra, m.Start, m.End)
	if err != nil {
		t.Fatal(err)
	}
	if path.IsEmpty() {
		t.Error("expected a path on a generated maze")
	}
}
