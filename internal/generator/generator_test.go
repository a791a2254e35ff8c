package generator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/aretw0/hedge/pkg/domain"
)

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// floodCount returns how many open cells are reachable from start via
// orthogonal open-cell steps.
func floodCount(g *domain.Grid, start domain.Point) int {
	visited := map[domain.Point]bool{start: true}
	queue := []domain.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors4(p.X, p.Y) {
			open, _ := g.IsOpen(n.X, n.Y)
			if open && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

func assertPerfectMaze(t *testing.T, m *domain.Maze) {
	t.Helper()
	g := m.Grid

	// Start and end are open.
	for _, p := range []domain.Point{m.Start, m.End} {
		open, err := g.IsOpen(p.X, p.Y)
		if err != nil || !open {
			t.Fatalf("endpoint (%d,%d) open = %v, err = %v", p.X, p.Y, open, err)
		}
	}

	// Outer border is wall.
	for x := 0; x < g.Width; x++ {
		for _, y := range []int{0, g.Height - 1} {
			if open, _ := g.IsOpen(x, y); open {
				t.Fatalf("border cell (%d,%d) is open", x, y)
			}
		}
	}
	for y := 0; y < g.Height; y++ {
		for _, x := range []int{0, g.Width - 1} {
			if open, _ := g.IsOpen(x, y); open {
				t.Fatalf("border cell (%d,%d) is open", x, y)
			}
		}
	}

	// Every odd-aligned cell was carved.
	wantCells := ((g.Width - 1) / 2) * ((g.Height - 1) / 2)
	openCells := g.OpenCells()
	if openCells < wantCells {
		t.Fatalf("open cells = %d, want at least the %d odd-aligned cells", openCells, wantCells)
	}

	// Single connected component.
	if reached := floodCount(g, m.Start); reached != openCells {
		t.Fatalf("reachable open cells = %d, total open = %d (disconnected)", reached, openCells)
	}

	// Tree property: no cycles.
	if pairs := g.OpenPairs(); pairs != openCells-1 {
		t.Fatalf("open-open pairs = %d, want %d (cycle detected)", pairs, openCells-1)
	}
}

func TestGenerate_PerfectMaze(t *testing.T) {
	dims := []struct{ w, h int }{
		{5, 5},
		{21, 11},
		{11, 21},
		{31, 31},
	}

	for _, kind := range domain.GeneratorKinds() {
		gen, err := New(kind)
		if err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}
		for _, d := range dims {
			for seed := int64(1); seed <= 3; seed++ {
				m, err := gen.Generate(d.w, d.h, newRNG(seed))
				if err != nil {
					t.Fatalf("%s %dx%d seed %d: %v", kind, d.w, d.h, seed, err)
				}
				assertPerfectMaze(t, m)
			}
		}
	}
}

func TestGenerate_InvalidDimensions(t *testing.T) {
	for _, kind := range domain.GeneratorKinds() {
		gen, _ := New(kind)
		for _, d := range []struct{ w, h int }{{0, 0}, {4, 5}, {5, 4}, {3, 3}} {
			if _, err := gen.Generate(d.w, d.h, newRNG(1)); !errors.Is(err, domain.ErrInvalidDimension) {
				t.Errorf("%s Generate(%d,%d) error = %v, want ErrInvalidDimension", kind, d.w, d.h, err)
			}
		}
	}
}

func TestNew_UnknownKind(t *testing.T) {
	if _, err := New("wilson"); !errors.Is(err, domain.ErrUnknownAlgorithm) {
		t.Errorf("New(wilson) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestNew_DefaultIsIterative(t *testing.T) {
	gen, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := gen.(Iterative); !ok {
		t.Errorf("New(\"\") = %T, want Iterative", gen)
	}
}

// The iterative variant must survive large grids: with native recursion a
// 201x201 carve can reach a depth of ~10k frames.
func TestIterative_LargeGrid(t *testing.T) {
	m, err := Iterative{}.Generate(201, 201, newRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	assertPerfectMaze(t, m)
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	for _, kind := range domain.GeneratorKinds() {
		gen, _ := New(kind)
		a, err := gen.Generate(21, 11, newRNG(42))
		if err != nil {
			t.Fatal(err)
		}
		b, err := gen.Generate(21, 11, newRNG(42))
		if err != nil {
			t.Fatal(err)
		}
		for i := range a.Grid.Cells {
			if a.Grid.Cells[i] != b.Grid.Cells[i] {
				t.Fatalf("%s: same seed produced different mazes at cell %d", kind, i)
			}
		}
	}
}
