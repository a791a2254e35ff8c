package cli

import (
	"fmt"

	"github.com/aretw0/hedge"
	"github.com/aretw0/hedge/internal/adapters/file"
	"github.com/aretw0/hedge/pkg/domain"
)

// RunOptions carries the merged configuration (file settings overridden by
// flags) for the generate and solve commands.
type RunOptions struct {
	Width     int
	Height    int
	Generator string
	Seed      int64
	Solver    string
	Theme     string
	Unicode   bool
	ExportDir string
	Debug     bool
}

// ExecuteGenerate carves a maze, prints it, and optionally solves it and
// exports the result. solve toggles the overlay; exportName ("" = no export)
// names the files written under opts.ExportDir.
func ExecuteGenerate(opts RunOptions, solve bool, exportName string) error {
	logger := createLogger(opts.Debug)

	renderer, err := newRenderer(opts.Theme, opts.Unicode)
	if err != nil {
		return err
	}

	svc := hedge.Service{Logger: logger}
	m, err := svc.Generate(opts.Width, opts.Height, opts.Generator, opts.Seed)
	if err != nil {
		return fmt.Errorf("error generating maze: %w", err)
	}

	var path domain.Path
	if solve {
		path, err = svc.Solve(m, opts.Solver, m.Start, m.End)
		if err != nil {
			return fmt.Errorf("error solving maze: %w", err)
		}
	}

	fmt.Print(renderer.Render(m, path))
	if solve {
		printSystemMessage("%s path: %d cells, %d steps", orDefault(opts.Solver, domain.SolverBFS), path.Len(), path.Steps())
	}

	if exportName != "" {
		if err := exportMaze(opts.ExportDir, exportName, m, path); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteSolve loads a JSON maze export, solves it, and prints the overlaid
// result.
func ExecuteSolve(mazePath string, opts RunOptions) error {
	logger := createLogger(opts.Debug)

	renderer, err := newRenderer(opts.Theme, opts.Unicode)
	if err != nil {
		return err
	}

	m, _, err := file.Load(mazePath)
	if err != nil {
		return err
	}

	svc := hedge.Service{Logger: logger}
	path, err := svc.Solve(m, opts.Solver, m.Start, m.End)
	if err != nil {
		return fmt.Errorf("error solving maze: %w", err)
	}

	fmt.Print(renderer.Render(m, path))
	if path.IsEmpty() {
		printSystemMessage("no route between %v and %v", m.Start, m.End)
		return nil
	}
	printSystemMessage("%s path: %d cells, %d steps", orDefault(opts.Solver, domain.SolverBFS), path.Len(), path.Steps())
	return nil
}

func exportMaze(dir, name string, m *domain.Maze, path domain.Path) error {
	exporter := file.New(dir)
	textPath, err := exporter.Text(name, m, path)
	if err != nil {
		return fmt.Errorf("error exporting maze: %w", err)
	}
	jsonPath, err := exporter.JSON(name, m, path)
	if err != nil {
		return fmt.Errorf("error exporting maze: %w", err)
	}
	printSystemMessage("exported %s and %s", textPath, jsonPath)
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
