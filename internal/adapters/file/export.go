// Package file writes mazes and solutions to disk, as plain text or JSON.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/hedge/internal/presentation/tui"
	"github.com/aretw0/hedge/pkg/domain"
	"github.com/muesli/termenv"
)

// Exporter writes maze snapshots into a configured directory.
// If BasePath is empty it defaults to ".hedge/exports".
type Exporter struct {
	BasePath string
}

// New creates a new Exporter with the given base path.
func New(basePath string) *Exporter {
	if basePath == "" {
		basePath = filepath.Join(".hedge", "exports")
	}
	return &Exporter{BasePath: basePath}
}

// snapshot is the JSON export schema.
type snapshot struct {
	Maze     *domain.Maze `json:"maze"`
	Solution domain.Path  `json:"solution,omitempty"`
}

// Text writes the maze as a plain ASCII rendering (no colors, so the file
// is portable) and returns the path written. Pass an empty path to export
// the unsolved maze.
func (e *Exporter) Text(name string, m *domain.Maze, path domain.Path) (string, error) {
	r := tui.NewRenderer(tui.WithProfile(termenv.Ascii))
	return e.write(name+".txt", []byte(r.Render(m, path)))
}

// JSON writes the maze and its solution as indented JSON and returns the
// path written.
func (e *Exporter) JSON(name string, m *domain.Maze, path domain.Path) (string, error) {
	data, err := json.MarshalIndent(snapshot{Maze: m, Solution: path}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal maze: %w", err)
	}
	return e.write(name+".json", append(data, '\n'))
}

// Load reads a JSON export back. The path is taken as-is, not relative to
// BasePath, so exports can be loaded from anywhere.
func Load(path string) (*domain.Maze, domain.Path, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read maze file: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil, fmt.Errorf("failed to parse maze file: %w", err)
	}
	if snap.Maze == nil {
		return nil, nil, fmt.Errorf("maze file %s holds no maze", path)
	}
	if err := snap.Maze.Validate(); err != nil {
		return nil, nil, err
	}
	return snap.Maze, snap.Solution, nil
}

// write persists data atomically: temp file in the same directory, fsync,
// then rename.
func (e *Exporter) write(filename string, data []byte) (string, error) {
	if filename == "" || filename[0] == '.' {
		return "", fmt.Errorf("export name cannot be empty")
	}

	if err := os.MkdirAll(e.BasePath, 0755); err != nil {
		return "", fmt.Errorf("failed to ensure export directory: %w", err)
	}

	destPath := filepath.Join(e.BasePath, filename)

	// Temp file lives in the same directory so the rename stays on one
	// filesystem.
	tmpFile, err := os.CreateTemp(e.BasePath, "tmp-"+filename+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return "", fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return "", fmt.Errorf("failed to finalize export: %w", err)
	}
	return destPath, nil
}
